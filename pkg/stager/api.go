package stager

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/roomvibe/staging-agent/pkg/stager/vibe"
	"github.com/roomvibe/staging-agent/pkg/stager/vision"
)

func (s *Stager) generateRouter() *gin.Engine {
	router := gin.Default()

	router.GET("/styles", func(c *gin.Context) {
		c.JSON(http.StatusOK, s.catalog.Names())
	})

	router.GET("/styles/:name", func(c *gin.Context) {
		name := c.Param("name")

		description, err := s.catalog.Lookup(name)
		if err != nil {
			c.String(http.StatusNotFound, err.Error())
			return
		}

		c.JSON(http.StatusOK, gin.H{"name": name, "description": description})
	})

	router.POST("/analyze", func(c *gin.Context) {
		styleName := c.PostForm("style")
		if styleName == "" {
			c.String(http.StatusBadRequest, "style is required")
			return
		}

		fileHeader, err := c.FormFile("image")
		if err != nil {
			c.String(http.StatusBadRequest, "image is required")
			return
		}

		file, err := fileHeader.Open()
		if err != nil {
			c.String(http.StatusBadRequest, err.Error())
			return
		}
		defer file.Close()

		data, err := io.ReadAll(file)
		if err != nil {
			c.String(http.StatusBadRequest, err.Error())
			return
		}

		mimeType := fileHeader.Header.Get("Content-Type")
		if mimeType == "" {
			mimeType = defaultMimeType
		}

		result, err := s.AnalyzeImage(c.Request.Context(), vision.Image{Data: data, MimeType: mimeType}, styleName)
		if err != nil {
			if errors.Is(err, vibe.ErrUnknownStyle) {
				c.String(http.StatusBadRequest, err.Error())
				return
			}
			c.String(http.StatusBadGateway, err.Error())
			return
		}

		c.JSON(http.StatusOK, gin.H{"prompt": result})
	})

	return router
}

func (s *Stager) GetRouter() *gin.Engine {
	return s.apiRouter
}

func (s *Stager) StartServer(ctx context.Context) error {
	slog.Info("starting server", "port", s.apiIpPort)

	if s.apiIpPort == "" {
		slog.Info("api ip port is empty, skipping server")
		return nil
	}

	server := &http.Server{
		Addr:    s.apiIpPort,
		Handler: s.apiRouter,
	}

	go func() {
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			slog.Error("server error", "error", err)
		}
	}()

	go func() {
		<-ctx.Done()
		if err := server.Shutdown(context.Background()); err != nil {
			slog.Error("server shutdown error", "error", err)
		}
	}()

	return nil
}
