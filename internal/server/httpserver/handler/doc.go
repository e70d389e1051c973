// Package handler provides the HTTP handlers of the activity service.
//
// Routes:
//
//	POST   /auth/login?username=&password=
//	POST   /auth/logout
//	GET    /auth/me
//	GET    /activities
//	GET    /activities/{name}
//	POST   /activities/{name}/signup?email=
//	DELETE /activities/{name}/unregister?email=
//	GET    /health
//	GET    /ready
//
// Errors are written as {"code", "detail", "request_id"} with the code
// repeated in the X-Error-Code header.
package handler
