package models

// TreasuryTransaction is one recent on-chain movement of treasury funds.
type TreasuryTransaction struct {
	Hash      string  `json:"hash"`
	Type      string  `json:"type"`
	Amount    float64 `json:"amount"`
	Timestamp string  `json:"timestamp"`
}

// TreasurySnapshot summarizes treasury holdings and recent activity.
type TreasurySnapshot struct {
	TotalValueLocked   float64               `json:"total_value_locked"`
	XMRTBalance        float64               `json:"xmrt_balance"`
	ETHBalance         float64               `json:"eth_balance"`
	USDCBalance        float64               `json:"usdc_balance"`
	RecentTransactions []TreasuryTransaction `json:"recent_transactions"`
}
