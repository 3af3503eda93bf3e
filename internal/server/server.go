package server

import (
	"fmt"

	"github.com/gin-gonic/gin"
)

type Server struct {
	Engine *gin.Engine
	port   string
}

func New(port string) *Server {
	r := gin.Default()
	return &Server{Engine: r, port: port}
}

func (s *Server) Start() error {
	addr := fmt.Sprintf(":%s", s.port)
	return s.Engine.Run(addr)
}
