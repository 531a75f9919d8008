package handlers

import (
	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const (
	flashSuccess = "success"
	flashError   = "error"
)

// Flash is a one-shot notice shown on the next rendered page.
type Flash struct {
	Category string
	Message  string
}

func addFlash(c *gin.Context, log *zap.SugaredLogger, category, msg string) {
	s := sessions.Default(c)
	s.AddFlash(msg, category)
	if err := s.Save(); err != nil {
		log.Errorf("[flash][save][err] %v", err)
	}
}

// popFlashes drains pending notices, errors last.
func popFlashes(c *gin.Context, log *zap.SugaredLogger) []Flash {
	s := sessions.Default(c)
	var out []Flash
	for _, category := range []string{flashSuccess, flashError} {
		for _, v := range s.Flashes(category) {
			if msg, ok := v.(string); ok {
				out = append(out, Flash{Category: category, Message: msg})
			}
		}
	}
	if len(out) > 0 {
		if err := s.Save(); err != nil {
			log.Errorf("[flash][save][err] %v", err)
		}
	}
	return out
}
