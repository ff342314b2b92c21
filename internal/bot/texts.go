package bot

// 利用者向け文言（アラビア語）。環境では切り替えない。

const (
	btnProducts = "📦 المنتجات"
	btnCart     = "🛒 سلتي"
	btnContact  = "ℹ️ تواصل معنا"

	btnAdminPanel    = "🛠️ لوحة الإدارة"
	btnAddProduct    = "➕ إضافة منتج"
	btnListProducts  = "📃 قائمة المنتجات"
	btnDeleteProduct = "❌ حذف منتج"
	btnBack          = "🏠 رجوع"

	btnAddToCart  = "🛒 أضف للسلة"
	btnClearCart  = "🧹 تفريغ السلة"
	btnCheckout   = "✅ إتمام الشراء"
	btnPayOnline  = "💳 دفع إلكتروني"
	btnPayOnMeet  = "🚚 عند الاستلام"
)

const paymentInfoText = "💳 الدفع الإلكتروني\n" +
	"أرسل المبلغ إلى أحد الحسابات التالية ثم ارفع صورة الإيصال:\n\n" +
	"• زين كاش: 0770 000 0000\n" +
	"• آسيا باي: 0780 000 0000\n" +
	"• ويسترن/موني غرام: الاسم — المدينة\n\n" +
	"بعد التحويل أرسل صورة الإيصال مع كتابة العنوان ورقم الهاتف في الرسالة."

const (
	textWelcome       = "أهلاً بك في المتجر 🛍️"
	textMenuHint      = "اختر من القائمة 👇"
	textContact       = "للتواصل معنا راسلنا هنا وسنرد بأقرب وقت 🌟"
	textNoProducts    = "لا توجد منتجات حالياً."
	textCartEmpty     = "سلتك فارغة 🛒"
	textAddedToCart   = "تمت الإضافة إلى السلة ✅"
	textCartCleared   = "تم تفريغ السلة 🧹"
	textChoosePayment = "اختر طريقة الدفع:"

	textOrderPlaced    = "تم تسجيل طلبك ✅ رقم الطلب: %d\nأرسل الآن العنوان ورقم الهاتف لإكمال التوصيل."
	textAddressSaved   = "تم حفظ العنوان ✅ سنتواصل معك قريباً."
	textAddressNoted   = "تم حفظ العنوان ✅ أرسل الآن صورة الإيصال 📸"
	textReceiptOK      = "تم استلام الإيصال ✅ سيتم تجهيز طلبك بعد التأكد من الدفع."
	textSendReceipt    = "أرسل صورة الإيصال 📸"
	textUnknownProduct = "المنتج غير موجود."

	textAdminOnly       = "هذه الخدمة للإدارة فقط."
	textAdminPanel      = "لوحة الإدارة 🛠️"
	textAdminAddPrompt  = "أرسل صورة المنتج مع وصف بصيغة:\nالاسم | السعر | الوصف\n(يمكن إرسال نص فقط بدون صورة)"
	textAdminDelPrompt  = "أرسل رقم المنتج المراد حذفه:"
	textAdminParseError = "صيغة غير صحيحة ❌\nاكتب: الاسم | السعر | الوصف"
	textAdminPriceError = "السعر غير صحيح ❌"
	textAdminNotNumber  = "أرسل رقماً صحيحاً."
	textAdminAdded      = "تمت إضافة المنتج ✅ (#%d)"
	textAdminDeleted    = "تم حذف المنتج ✅"
	textAdminNotFound   = "لا يوجد منتج بهذا الرقم."
)
