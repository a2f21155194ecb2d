package handlers

import (
	"fmt"
	"log"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
)

type Session struct {
	sessions.Session
}

func LoadSession(c *gin.Context) *Session {
	return &Session{
		Session: sessions.Default(c),
	}
}

// Flash queues a message for the next rendered page
func (s *Session) Flash(format string, args ...any) {
	s.AddFlash(fmt.Sprintf(format, args...))
	if err := s.Save(); err != nil {
		log.Printf("Saving session: %v", err)
	}
}

// TakeFlashes returns the queued messages and forgets them
func (s *Session) TakeFlashes() (result []string) {
	flashes := s.Flashes()
	if len(flashes) == 0 {
		return
	}
	for _, f := range flashes {
		if msg, ok := f.(string); ok {
			result = append(result, msg)
		}
	}
	if err := s.Save(); err != nil {
		log.Printf("Saving session: %v", err)
	}
	return
}
