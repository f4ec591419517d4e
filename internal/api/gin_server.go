package api

import (
	"embed"
	"html/template"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"lingo-bridge/internal/services"
	"lingo-bridge/pkg/types"
)

//go:embed templates/index.html
var templateFS embed.FS

type GinServer struct {
	router   *gin.Engine
	logger   *zap.Logger
	config   types.ServerConfig
	services *services.Services
}

func NewGinServer(logger *zap.Logger, config types.ServerConfig, services *services.Services) *GinServer {
	router := gin.Default()
	router.Use(GinLogger(logger))
	router.SetHTMLTemplate(template.Must(template.ParseFS(templateFS, "templates/index.html")))

	server := &GinServer{
		router:   router,
		logger:   logger,
		config:   config,
		services: services,
	}
	server.SetupRoutes()
	return server
}

// GetRouter returns the Gin router
func (s *GinServer) GetRouter() *gin.Engine {
	return s.router
}

func (s *GinServer) SetupRoutes() {
	s.router.GET("/health", s.HealthCheck)
	s.router.GET("/", s.Index)
	s.router.POST("/translate", s.Translate)
	s.router.POST("/speak", s.Speak)
	s.router.POST("/share", s.Share)
}

// GinLogger returns a gin middleware for logging using zap
func GinLogger(logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		logger.Info("request",
			zap.String("method", c.Request.Method),
			zap.String("path", c.Request.URL.Path),
			zap.Int("status", c.Writer.Status()),
			zap.String("client_ip", c.ClientIP()),
		)
	}
}

// respondError maps error kinds to HTTP status codes in one place.
func (s *GinServer) respondError(c *gin.Context, err error) {
	status := http.StatusInternalServerError
	switch types.KindOf(err) {
	case types.KindValidation:
		status = http.StatusBadRequest
	case types.KindNotFound:
		status = http.StatusNotFound
	}
	if status == http.StatusInternalServerError {
		s.logger.Error("request failed", zap.Error(err))
	}
	c.JSON(status, gin.H{"error": err.Error()})
}

func (s *GinServer) HealthCheck(c *gin.Context) {
	c.JSON(200, gin.H{
		"status":  "healthy",
		"service": "lingo-bridge",
	})
}

// Index renders the translation page. A valid share token pre-populates
// the page with the stored triple; an unknown one falls back to the
// empty default instead of failing.
func (s *GinServer) Index(c *gin.Context) {
	data := gin.H{
		"SourceText":    "",
		"Translation":   "",
		"Pronunciation": "",
	}

	if id := c.Query("share"); id != "" {
		record, err := s.services.Sharer.Get(c.Request.Context(), id)
		switch {
		case err == nil:
			data["SourceText"] = record.SourceText
			data["Translation"] = record.Translation
			data["Pronunciation"] = record.Pronunciation
		case types.KindOf(err) == types.KindNotFound:
			s.logger.Info("unknown share token", zap.String("id", id))
		default:
			s.respondError(c, err)
			return
		}
	}

	c.HTML(http.StatusOK, "index.html", data)
}

func (s *GinServer) Translate(c *gin.Context) {
	var req types.TranslateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if req.Source == "" {
		req.Source = "en"
	}
	if req.Target == "" {
		req.Target = "zh"
	}

	result, err := s.services.Translator.Translate(c.Request.Context(), req.Text, req.Source, req.Target, req.Traditional)
	if err != nil {
		s.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, types.TranslateResponse{
		Translation:   result.Translation,
		Pronunciation: result.Pronunciation,
		SourceText:    result.SourceText,
	})
}

// Speak streams a synthesized MP3 clip. The temporary artifact is
// released once the response body has been written, on every exit path.
func (s *GinServer) Speak(c *gin.Context) {
	var req types.SpeakRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if req.Text == "" {
		s.respondError(c, types.NewValidationError("text is required"))
		return
	}

	artifact, err := s.services.Speaker.Synthesize(c.Request.Context(), req.Text, req.Lang)
	if err != nil {
		s.respondError(c, err)
		return
	}
	defer func() {
		if err := artifact.Release(); err != nil {
			s.logger.Error("failed to release audio artifact", zap.Error(err))
		}
	}()

	f, err := artifact.Open()
	if err != nil {
		s.respondError(c, err)
		return
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		s.respondError(c, err)
		return
	}

	c.DataFromReader(http.StatusOK, info.Size(), "audio/mpeg", f, nil)
}

func (s *GinServer) Share(c *gin.Context) {
	var req types.ShareRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	id, err := s.services.Sharer.Create(c.Request.Context(), req.SourceText, req.Translation, req.Pronunciation)
	if err != nil {
		s.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, types.ShareResponse{
		ShareURL: s.config.ShareURL(id),
	})
}
