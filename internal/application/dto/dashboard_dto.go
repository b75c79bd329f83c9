package dto

// DashboardSummaryResponse métricas del dashboard de una empresa: las mismas
// cuatro tarjetas que muestra la página Dashboard del cliente.
type DashboardSummaryResponse struct {
	CompanyID      string `json:"companyId"`
	PurchaseOrders int    `json:"purchaseOrders"`
	SalesOrders    int    `json:"salesOrders"`
	TotalOrders    int    `json:"totalOrders"`
	ActiveListings int    `json:"activeListings"`
}
