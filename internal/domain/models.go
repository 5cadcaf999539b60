package domain

// VendorRating grades a vendor's overall reliability.
type VendorRating string

const (
	RatingHigh   VendorRating = "High"
	RatingMedium VendorRating = "Medium"
	RatingLow    VendorRating = "Low"
)

// POStatus tracks where a purchase order sits in its lifecycle.
type POStatus string

const (
	POPending   POStatus = "Pending"
	POApproved  POStatus = "Approved"
	PODelivered POStatus = "Delivered"
	POPartial   POStatus = "Partial"
	PODelayed   POStatus = "Delayed"
)

// InvoiceStatus tracks payment state of a vendor invoice.
type InvoiceStatus string

const (
	InvoicePaid    InvoiceStatus = "Paid"
	InvoicePending InvoiceStatus = "Pending"
	InvoiceOverdue InvoiceStatus = "Overdue"
)

// MaterialSpend is one entry in the top-materials ranking. Order within the
// slice is the display rank; the system never re-sorts it.
type MaterialSpend struct {
	Name  string `json:"name"`
	Value int64  `json:"value"`
}

// ProjectStats carries the weekly procurement figures for one project site.
type ProjectStats struct {
	ID                           string   `json:"id"`
	Name                         string   `json:"name"`
	BudgetUtilization            float64  `json:"budgetUtilization"`
	MaterialRequirementsReceived int      `json:"materialRequirementsReceived"`
	POsRaisedCount               int      `json:"posRaisedCount"`
	DeliveriesCompleted          int      `json:"deliveriesCompleted"`
	OutstandingItems             int      `json:"outstandingItems"`
	CriticalShortages            []string `json:"criticalShortages"`
}

// PurchaseOrder is a high-value PO highlighted in the weekly report.
// Vendor and project are referenced by copied name and id; editing a project
// elsewhere does not update POs that mention it.
type PurchaseOrder struct {
	PONumber        string   `json:"poNumber"`
	VendorID        string   `json:"vendorId"`
	VendorName      string   `json:"vendorName"`
	ProjectID       string   `json:"projectId"`
	ProjectName     string   `json:"projectName"`
	MaterialName    string   `json:"materialName"`
	Value           int64    `json:"value"`
	DateRaised      string   `json:"dateRaised"`
	DeliveryDueDate string   `json:"deliveryDueDate"`
	Status          POStatus `json:"status"`
}

// Vendor is a supplier scored on delivery performance.
type Vendor struct {
	ID                  string       `json:"id"`
	Name                string       `json:"name"`
	Rating              VendorRating `json:"rating"`
	OnTimeDeliveryScore float64      `json:"onTimeDeliveryScore"`
	AvgLeadTime         float64      `json:"avgLeadTime"`
}

// Invoice is a vendor invoice shown on the finance dashboard.
type Invoice struct {
	ID         string        `json:"id"`
	VendorName string        `json:"vendorName"`
	PONumber   string        `json:"poNumber"`
	Amount     int64         `json:"amount"`
	DueDate    string        `json:"dueDate"`
	Status     InvoiceStatus `json:"status"`
}

// FinanceData is the finance section of the weekly report. Currency amounts
// are rupees.
type FinanceData struct {
	TotalOutstandingPayables int64     `json:"totalOutstandingPayables"`
	OverduePayables          int64     `json:"overduePayables"`
	WeeklyCashFlowReq        int64     `json:"weeklyCashFlowReq"`
	BudgetUtilizedTotal      float64   `json:"budgetUtilizedTotal"`
	RecentInvoices           []Invoice `json:"recentInvoices"`
}

// WeeklyData is the whole weekly MIS report. One instance is "the current
// week"; it is read, edited and persisted wholesale, never field by field.
type WeeklyData struct {
	WeekStarting          string          `json:"weekStarting"`
	TotalPOsRaised        int             `json:"totalPOsRaised"`
	TotalPOValue          int64           `json:"totalPOValue"`
	PendingIndentsCount   int             `json:"pendingIndentsCount"`
	PendingIndentsValue   int64           `json:"pendingIndentsValue"`
	PendingApprovals      int             `json:"pendingApprovals"`
	DeliveriesCompleted   int             `json:"deliveriesCompleted"`
	DeliveriesDelayed     int             `json:"deliveriesDelayed"`
	QualityIssuesReported int             `json:"qualityIssuesReported"`
	TopMaterials          []MaterialSpend `json:"topMaterials"`
	Projects              []ProjectStats  `json:"projects"`
	HighValuePOs          []PurchaseOrder `json:"highValuePOs"`
	Vendors               []Vendor        `json:"vendors"`
	Finance               FinanceData     `json:"finance"`
}

// Valid reports whether the rating is one of the declared members.
func (r VendorRating) Valid() bool {
	switch r {
	case RatingHigh, RatingMedium, RatingLow:
		return true
	}
	return false
}

// Valid reports whether the status is one of the declared members.
func (s POStatus) Valid() bool {
	switch s {
	case POPending, POApproved, PODelivered, POPartial, PODelayed:
		return true
	}
	return false
}

// Valid reports whether the status is one of the declared members.
func (s InvoiceStatus) Valid() bool {
	switch s {
	case InvoicePaid, InvoicePending, InvoiceOverdue:
		return true
	}
	return false
}
