package domain

// DefaultWeeklyData returns the built-in week used to seed the store and to
// serve reads when the store is unreachable. Callers get a fresh copy each
// time, so an edited draft never leaks back into the fallback.
func DefaultWeeklyData() WeeklyData {
	return WeeklyData{
		WeekStarting:          "02-Dec-2024",
		TotalPOsRaised:        42,
		TotalPOValue:          38500000,
		PendingIndentsCount:   15,
		PendingIndentsValue:   12500000,
		PendingApprovals:      8,
		DeliveriesCompleted:   31,
		DeliveriesDelayed:     6,
		QualityIssuesReported: 2,
		TopMaterials: []MaterialSpend{
			{Name: "TMT Steel", Value: 14200000},
			{Name: "Cement (OPC 53)", Value: 8600000},
			{Name: "RMC M30", Value: 5400000},
			{Name: "Structural Steel", Value: 4100000},
			{Name: "Electrical Cables", Value: 2300000},
		},
		Projects: []ProjectStats{
			{
				ID:                           "P001",
				Name:                         "Highway Package 4A",
				BudgetUtilization:            72,
				MaterialRequirementsReceived: 18,
				POsRaisedCount:               14,
				DeliveriesCompleted:          11,
				OutstandingItems:             5,
				CriticalShortages:            []string{"TMT Steel 16mm", "Bitumen VG30"},
			},
			{
				ID:                           "P002",
				Name:                         "Metro Depot Civil Works",
				BudgetUtilization:            58,
				MaterialRequirementsReceived: 12,
				POsRaisedCount:               10,
				DeliveriesCompleted:          8,
				OutstandingItems:             3,
				CriticalShortages:            []string{"Shuttering Plywood"},
			},
			{
				ID:                           "P003",
				Name:                         "Township Phase 2",
				BudgetUtilization:            81,
				MaterialRequirementsReceived: 16,
				POsRaisedCount:               18,
				DeliveriesCompleted:          12,
				OutstandingItems:             7,
				CriticalShortages:            []string{},
			},
		},
		HighValuePOs: []PurchaseOrder{
			{
				PONumber:        "PO-2024-0861",
				VendorID:        "V01",
				VendorName:      "Tata Steel Ltd",
				ProjectID:       "P001",
				ProjectName:     "Highway Package 4A",
				MaterialName:    "TMT Steel 16mm",
				Value:           8200000,
				DateRaised:      "2024-12-02",
				DeliveryDueDate: "2024-12-09",
				Status:          POApproved,
			},
			{
				PONumber:        "PO-2024-0858",
				VendorID:        "V02",
				VendorName:      "UltraTech Cement",
				ProjectID:       "P003",
				ProjectName:     "Township Phase 2",
				MaterialName:    "Cement (OPC 53)",
				Value:           4600000,
				DateRaised:      "2024-12-01",
				DeliveryDueDate: "2024-12-06",
				Status:          PODelivered,
			},
			{
				PONumber:        "PO-2024-0854",
				VendorID:        "V03",
				VendorName:      "RDC Concrete",
				ProjectID:       "P002",
				ProjectName:     "Metro Depot Civil Works",
				MaterialName:    "RMC M30",
				Value:           3100000,
				DateRaised:      "2024-11-29",
				DeliveryDueDate: "2024-12-05",
				Status:          PODelayed,
			},
		},
		Vendors: []Vendor{
			{ID: "V01", Name: "Tata Steel Ltd", Rating: RatingHigh, OnTimeDeliveryScore: 94, AvgLeadTime: 6},
			{ID: "V02", Name: "UltraTech Cement", Rating: RatingHigh, OnTimeDeliveryScore: 91, AvgLeadTime: 4},
			{ID: "V03", Name: "RDC Concrete", Rating: RatingMedium, OnTimeDeliveryScore: 78, AvgLeadTime: 3},
			{ID: "V04", Name: "Shree Electricals", Rating: RatingLow, OnTimeDeliveryScore: 62, AvgLeadTime: 9},
		},
		Finance: FinanceData{
			TotalOutstandingPayables: 21400000,
			OverduePayables:          5300000,
			WeeklyCashFlowReq:        9800000,
			BudgetUtilizedTotal:      68,
			RecentInvoices: []Invoice{
				{ID: "INV-4821", VendorName: "Tata Steel Ltd", PONumber: "PO-2024-0861", Amount: 4100000, DueDate: "2024-12-10", Status: InvoicePending},
				{ID: "INV-4815", VendorName: "UltraTech Cement", PONumber: "PO-2024-0858", Amount: 2300000, DueDate: "2024-12-04", Status: InvoicePaid},
				{ID: "INV-4799", VendorName: "Shree Electricals", PONumber: "PO-2024-0832", Amount: 860000, DueDate: "2024-11-25", Status: InvoiceOverdue},
			},
		},
	}
}
