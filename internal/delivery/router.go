package delivery

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// HTML content for the test page
const htmlTestPageContent = `
<!DOCTYPE html>
<html lang="en">
<head>
    <meta charset="UTF-8">
    <title>Category Service API Test Page</title>
    <style>
        body { font-family: Helvetica, Arial, sans-serif; line-height: 1.6; padding: 20px; background-color: #f9f9f9; color: #333; }
        li { margin-bottom: 15px; background-color: #fff; padding: 10px; border: 1px solid #eee; border-radius: 4px; list-style: none; }
        code { background-color: #e8e8e8; padding: 3px 6px; border-radius: 3px; }
    </style>
</head>
<body>
    <h1>Category Service Endpoints</h1>
    <ul>
        <li><b>POST</b> <code>/categories</code> - Create a category. JSON body: <code>{"name": "string", "description": "string|null", "is_active": bool}</code></li>
        <li><b>GET</b> <code><a href="/categories">/categories</a></code> - Search categories. Query: <code>page</code>, <code>per_page</code> (default 15), <code>sort</code> (<code>name</code>, <code>created_at</code>...), <code>sort_dir</code> (<code>asc</code>|<code>desc</code>), <code>filter</code> (e.g. <a href="/categories?filter=movie&sort=name">/categories?filter=movie&amp;sort=name</a>)</li>
        <li><b>GET</b> <code>/categories/{id}</code> - Retrieve a category by UUID.</li>
        <li><b>PUT</b>/<b>PATCH</b> <code>/categories/{id}</code> - Update name, description and is_active.</li>
        <li><b>DELETE</b> <code>/categories/{id}</code> - Delete a category.</li>
    </ul>
</body>
</html>
`

func serveTestPage(c *gin.Context) {
	c.Data(http.StatusOK, "text/html; charset=utf-8", []byte(htmlTestPageContent))
}

// RequestLogger logs every request before and after it is handled.
func RequestLogger(logger *logrus.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		logger.WithFields(logrus.Fields{
			"method": c.Request.Method,
			"path":   c.Request.URL.Path,
			"ip":     c.ClientIP(),
		}).Info("Request received")
		c.Next()
		logger.WithFields(logrus.Fields{
			"status": c.Writer.Status(),
			"method": c.Request.Method,
			"path":   c.Request.URL.Path,
		}).Info("Request completed")
	}
}

func NewRouter(logger *logrus.Logger, categoryHandler *CategoryHandler) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(RequestLogger(logger))

	router.GET("/", serveTestPage)
	router.GET("/healthz", func(c *gin.Context) {
		SuccessResponse(c, http.StatusOK, "ok", nil)
	})
	categoryHandler.RegisterRoutes(router)
	return router
}
