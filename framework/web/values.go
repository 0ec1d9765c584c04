package web

import (
	"time"

	"github.com/gin-gonic/gin"
)

// CtxValuesKey is how request values are stored/retrieved.
const CtxValuesKey = "app-context"

// Values represent state for each request.
type Values struct {
	TraceID    string
	StatusCode int
	Now        time.Time
}

// ContextWithValues sets a gin.Context with request values.
func ContextWithValues(ctx *gin.Context, v *Values) {
	ctx.Set(CtxValuesKey, v)
}

// ValuesFromContext retrieves request values from gin.Context.
func ValuesFromContext(ctx *gin.Context) (*Values, bool) {
	v, ok := ctx.Value(CtxValuesKey).(*Values)
	return v, ok
}
