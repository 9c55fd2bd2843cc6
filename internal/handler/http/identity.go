package http

import (
	"log/slog"
	"net/http"

	"github.com/cmlabs-hris/hris-admin-go/internal/domain/user"
	"github.com/cmlabs-hris/hris-admin-go/internal/handler/http/response"
	"github.com/cmlabs-hris/hris-admin-go/internal/pkg/jwt"
)

// actingEmployee returns the employee a self-service request is made for.
// Roles that manage employees may name anyone; every other role acts only for
// the employee linked to its token, and an empty requested id means that one.
// On false the response has been written.
func actingEmployee(w http.ResponseWriter, r *http.Request, requested string) (string, bool) {
	claims, err := jwt.ClaimsFromContext(r.Context())
	if err != nil {
		slog.Error("Failed to get JWT claims", "error", err)
		response.Unauthorized(w, "Unauthorized")
		return "", false
	}
	if user.HasPermission(claims.Role, user.PermissionEmployeesWrite) {
		return requested, true
	}

	if claims.EmployeeID == "" {
		response.Forbidden(w, "Employee ID not found in token")
		return "", false
	}
	if requested != "" && requested != claims.EmployeeID {
		slog.Warn("Cross-employee request refused", "user_id", claims.UserID, "employee_id", claims.EmployeeID, "requested", requested)
		response.Forbidden(w, "You can only act on your own employee record")
		return "", false
	}
	return claims.EmployeeID, true
}
