package internaldefs

import (
	"github.com/authgate/authgate"
)

// CounterDef ties an engine counter to its exported name and help text.
type CounterDef struct {
	ID   authgate.MetricID
	Name string
	Help string
}

// CounterDefs enumerates every engine counter an exporter should publish.
var CounterDefs = []CounterDef{
	{ID: authgate.MetricLoginSuccess, Name: "authgate_login_success_total", Help: "Successful login attempts."},
	{ID: authgate.MetricLoginFailure, Name: "authgate_login_failure_total", Help: "Failed login attempts."},
	{ID: authgate.MetricLoginRateLimited, Name: "authgate_login_rate_limited_total", Help: "Rate-limited login attempts."},
	{ID: authgate.MetricRefreshSuccess, Name: "authgate_refresh_success_total", Help: "Successful refresh operations."},
	{ID: authgate.MetricRefreshFailure, Name: "authgate_refresh_failure_total", Help: "Failed refresh operations."},
	{ID: authgate.MetricLogout, Name: "authgate_logout_total", Help: "Single-token logout operations."},
	{ID: authgate.MetricLogoutAll, Name: "authgate_logout_all_total", Help: "Logout-all operations."},
	{ID: authgate.MetricAuthorizeSuccess, Name: "authgate_authorize_success_total", Help: "Authorizations granted."},
	{ID: authgate.MetricAuthorizeDenied, Name: "authgate_authorize_denied_total", Help: "Authorizations denied for invalid, expired, or wrong-role tokens."},
	{ID: authgate.MetricAuthorizeRevoked, Name: "authgate_authorize_revoked_total", Help: "Authorizations denied because the token was revoked."},
	{ID: authgate.MetricStoreError, Name: "authgate_store_error_total", Help: "Operations aborted by a token store outage."},
}
