package api

import (
	"context"
	"html/template"
	"net/http"
	"sort"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/starwars-blog/api/internal/logging"
	"github.com/starwars-blog/api/internal/metrics"
)

// HealthChecker reports whether a dependency is reachable
type HealthChecker interface {
	HealthCheck(ctx context.Context) error
}

// SystemHandler serves the sitemap, health and metrics endpoints
type SystemHandler struct {
	db     HealthChecker
	routes func() gin.RoutesInfo
}

// NewSystemHandler creates a SystemHandler. routes is called on every sitemap request.
func NewSystemHandler(db HealthChecker, routes func() gin.RoutesInfo) *SystemHandler {
	return &SystemHandler{db: db, routes: routes}
}

func (h *SystemHandler) RegisterRoutes(router gin.IRouter) {
	router.GET("/", h.Sitemap)
	router.GET("/health", h.Health)
	router.GET("/metrics", gin.WrapH(metrics.Handler()))
}

func (h *SystemHandler) Health(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
	defer cancel()

	if err := h.db.HealthCheck(ctx); err != nil {
		logging.Ctx(ctx).Error().Err(err).Msg("database health check failed")
		c.JSON(http.StatusServiceUnavailable, gin.H{"status": "unhealthy", "database": "down"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "healthy", "database": "up"})
}

var sitemapTemplate = template.Must(template.New("sitemap").Parse(`<!DOCTYPE html>
<html>
<head><title>Star Wars API</title></head>
<body>
<h1>Star Wars API</h1>
<p>API host: <strong>{{.Host}}</strong></p>
<ul>
{{- range .Routes}}
<li><code>{{.Method}}</code> {{if .Link}}<a href="{{.Path}}">{{.Path}}</a>{{else}}{{.Path}}{{end}}</li>
{{- end}}
</ul>
</body>
</html>
`))

type sitemapRoute struct {
	Method string
	Path   string
	Link   bool
}

// Sitemap lists every registered route. Parameterless GET routes are links.
func (h *SystemHandler) Sitemap(c *gin.Context) {
	var routes []sitemapRoute
	for _, r := range h.routes() {
		if r.Path == "/" {
			continue
		}
		routes = append(routes, sitemapRoute{
			Method: r.Method,
			Path:   r.Path,
			Link:   r.Method == http.MethodGet && !strings.ContainsAny(r.Path, ":*"),
		})
	}
	sort.Slice(routes, func(i, j int) bool {
		if routes[i].Path != routes[j].Path {
			return routes[i].Path < routes[j].Path
		}
		return routes[i].Method < routes[j].Method
	})

	c.Header("Content-Type", "text/html; charset=utf-8")
	c.Status(http.StatusOK)
	if err := sitemapTemplate.Execute(c.Writer, gin.H{"Host": c.Request.Host, "Routes": routes}); err != nil {
		_ = c.Error(err)
	}
}
