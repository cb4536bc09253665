package httpserver

import (
	"errors"
	"fmt"

	"github.com/gin-gonic/gin"

	"github.com/dondeestakoko/easemyday/config"
	extractionHTTP "github.com/dondeestakoko/easemyday/internal/extraction/delivery/http"
	extractionUC "github.com/dondeestakoko/easemyday/internal/extraction/usecase"
	"github.com/dondeestakoko/easemyday/pkg/datemath"
	"github.com/dondeestakoko/easemyday/pkg/llmprovider"
	"github.com/dondeestakoko/easemyday/pkg/log"
)

// HTTPServer holds all dependencies for the HTTP server.
type HTTPServer struct {
	gin         *gin.Engine
	l           log.Logger
	port        int
	mode        string
	environment string

	cfg *config.Config

	llm         *llmprovider.Manager
	calendar    extractionUC.Calendar
	tasks       extractionUC.TaskWriter
	transcriber extractionHTTP.Transcriber
	dateMath    *datemath.Parser
}

// Config is the dependency bag passed to New(). Calendar, Tasks and
// Transcriber may be nil; the affected operations degrade gracefully.
type Config struct {
	Logger      log.Logger
	Port        int
	Mode        string
	Environment string

	AppConfig *config.Config

	LLM         *llmprovider.Manager
	Calendar    extractionUC.Calendar
	Tasks       extractionUC.TaskWriter
	Transcriber extractionHTTP.Transcriber
	DateMath    *datemath.Parser
}

// New creates a new HTTPServer instance.
func New(logger log.Logger, cfg Config) (*HTTPServer, error) {
	gin.SetMode(cfg.Mode)

	srv := &HTTPServer{
		l:           logger,
		gin:         gin.Default(),
		port:        cfg.Port,
		mode:        cfg.Mode,
		environment: cfg.Environment,
		cfg:         cfg.AppConfig,
		llm:         cfg.LLM,
		calendar:    cfg.Calendar,
		tasks:       cfg.Tasks,
		transcriber: cfg.Transcriber,
		dateMath:    cfg.DateMath,
	}

	if err := srv.validate(); err != nil {
		return nil, err
	}

	if err := srv.mapHandlers(); err != nil {
		return nil, err
	}

	return srv, nil
}

func (srv HTTPServer) validate() error {
	if srv.l == nil {
		return errors.New("logger is required")
	}
	if srv.mode == "" {
		return errors.New("mode is required")
	}
	if srv.port == 0 {
		return errors.New("port is required")
	}
	if srv.cfg == nil {
		return errors.New("app config is required")
	}
	if srv.llm == nil {
		return errors.New("LLM manager is required")
	}
	if srv.dateMath == nil {
		return errors.New("date parser is required")
	}
	return nil
}

// Run starts the HTTP server and blocks until it stops.
func (srv HTTPServer) Run() error {
	return srv.gin.Run(fmt.Sprintf(":%d", srv.port))
}
