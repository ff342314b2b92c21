// Package session は会話の途中状態を持つ。
// プロセス内のみで、再起動で消えてよい。
package session

import "sync"

type State int

const (
	StateBrowsing State = iota
	// 支払い方法の選択待ち
	StateAwaitingPayment
	// 電子決済のレシート画像待ち
	StateAwaitingReceipt
	// 代引きの住所・連絡先待ち
	StateAwaitingAddress
	// 管理者：商品情報（name | price | description）待ち
	StateAwaitingProductInput
	// 管理者：削除する商品IDの数字待ち
	StateAwaitingDeleteID
)

// Session はユーザー1人分の会話状態。
// レシート待ちフラグと注文IDを別々に持たず、1レコードにまとめる。
type Session struct {
	State          State
	PendingOrderID int64
	CheckoutKey    string
}

type Manager struct {
	mu       sync.RWMutex
	sessions map[int64]Session
}

func NewManager() *Manager {
	return &Manager{sessions: map[int64]Session{}}
}

// Get は未登録ならゼロ値（Browsing）を返す。
func (m *Manager) Get(userID int64) Session {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.sessions[userID]
}

func (m *Manager) Set(userID int64, s Session) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.sessions[userID] = s
}

// Reset はBrowsingに戻す。
func (m *Manager) Reset(userID int64) {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.sessions, userID)
}
