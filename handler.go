package trainer

import (
	"context"
	"net/http"

	"github.com/aws/aws-lambda-go/events"
	ginadapter "github.com/awslabs/aws-lambda-go-api-proxy/gin"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

// Report is the outcome of evaluating a single sensor package.
type Report struct {
	Record  *Record `json:"record,omitempty"`
	Message string  `json:"message,omitempty"`
	Error   string  `json:"error,omitempty"`
}

// ReportsHandler evaluates a posted batch of sensor packages. A failed
// package is reported in place; the rest of the batch proceeds.
func ReportsHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		pkgs, err := ReadPackages(c.Request.Body)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		reports := make([]Report, 0, len(pkgs))
		for _, pkg := range pkgs {
			rec, err := Evaluate(pkg)
			if err != nil {
				log.Warn().Str("workout", pkg.Type).Err(err).Msg("skipping package")
				reports = append(reports, Report{Error: err.Error()})
				continue
			}
			reports = append(reports, Report{Record: &rec, Message: rec.Message()})
		}
		c.JSON(http.StatusOK, reports)
	}
}

// LambdaHandler adapts the engine to the lambda runtime
func LambdaHandler(gl *ginadapter.GinLambda) func(context.Context, events.APIGatewayProxyRequest) (events.APIGatewayProxyResponse, error) {
	return func(ctx context.Context, req events.APIGatewayProxyRequest) (events.APIGatewayProxyResponse, error) {
		return gl.ProxyWithContext(ctx, req)
	}
}
