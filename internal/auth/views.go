package auth

// View names a top-level panel of the MIS client.
type View string

const (
	ViewDashboard        View = "dashboard"
	ViewReport           View = "report"
	ViewDataEntry        View = "data-entry"
	ViewFinanceDashboard View = "finance-dashboard"
)

// ViewsFor returns the panels a role may mount and the tab selected on
// login. Procurement gets the overview dashboard, the report generator and
// the full data editor; finance gets its own dashboard plus the
// finance-only slice of the editor.
func ViewsFor(role Role) (views []View, defaultView View) {
	switch role {
	case RoleFinance:
		return []View{ViewFinanceDashboard, ViewDataEntry}, ViewFinanceDashboard
	default:
		return []View{ViewDashboard, ViewReport, ViewDataEntry}, ViewDashboard
	}
}

// CanAccess reports whether a role may mount the given view.
func CanAccess(role Role, view View) bool {
	views, _ := ViewsFor(role)
	for _, v := range views {
		if v == view {
			return true
		}
	}
	return false
}
