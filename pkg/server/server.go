package server

import (
	"net/http"
	"os"
	"time"

	"github.com/gorilla/handlers"
	"github.com/gorilla/mux"
	"gorm.io/gorm"

	"github.com/blendata/cerberus/pkg/config"
	"github.com/blendata/cerberus/pkg/server/store"
	gormstore "github.com/blendata/cerberus/pkg/server/store/gorm"
)

// Server wires the router, the database handle and the stores together.
// Stores are injected at construction; nothing here is ambient global state.
type Server struct {
	Router *mux.Router
	DB     *gorm.DB
	Config *config.Config

	AuthzStore      store.AuthzStore
	ElementsStore   store.ElementsStore
	ComponentsStore store.ComponentsStore
	UsersStore      store.UsersStore
	HealthStore     store.HealthStore

	srv *http.Server
}

// NewServer creates a server with GORM-backed stores over the given database
func NewServer(db *gorm.DB, cfg *config.Config, host string, port string) *Server {
	router := mux.NewRouter().UseEncodedPath()
	srv := &http.Server{
		Handler: handlers.LoggingHandler(os.Stdout, router),
		Addr:    host + ":" + port,
		// Good practice: enforce timeouts for servers you create!
		WriteTimeout: 15 * time.Second,
		ReadTimeout:  15 * time.Second,
	}

	return &Server{
		Router:          router,
		DB:              db,
		Config:          cfg,
		AuthzStore:      gormstore.NewAuthzStore(db),
		ElementsStore:   gormstore.NewElementsStore(db),
		ComponentsStore: gormstore.NewComponentsStore(db),
		UsersStore:      gormstore.NewUsersStore(db),
		HealthStore:     gormstore.NewHealthStore(db),
		srv:             srv,
	}
}

func (s *Server) Start() error {
	return s.srv.ListenAndServe()
}
