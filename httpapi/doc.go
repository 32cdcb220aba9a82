// Package httpapi is the HTTP surface over authgate.Engine: credential
// login, token refresh, logout, and two guarded probe routes. It exists so
// services embedding the engine do not each reinvent the status-code
// mapping; mount [Handler.Router] under any mux.
//
// Status contract:
//
//	401 invalid credentials, invalid/expired token
//	403 valid token, wrong role
//	422 missing or undecodable request fields
//	400 malformed token presented to logout
//	429 login throttle engaged
//	503 token store unreachable
package httpapi
