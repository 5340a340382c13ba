package app

import (
	"github.com/cleitonmarx/symbiont"
	"github.com/cleitonmarx/symbiont-taskchat/internal/adapters/inbound/http"
	"github.com/cleitonmarx/symbiont-taskchat/internal/adapters/outbound/config"
	"github.com/cleitonmarx/symbiont-taskchat/internal/adapters/outbound/log"
	"github.com/cleitonmarx/symbiont-taskchat/internal/adapters/outbound/modelrunner"
	"github.com/cleitonmarx/symbiont-taskchat/internal/adapters/outbound/postgres"
	"github.com/cleitonmarx/symbiont-taskchat/internal/adapters/outbound/redis"
	"github.com/cleitonmarx/symbiont-taskchat/internal/adapters/outbound/security"
	"github.com/cleitonmarx/symbiont-taskchat/internal/adapters/outbound/time"
	"github.com/cleitonmarx/symbiont-taskchat/internal/assistant"
	"github.com/cleitonmarx/symbiont-taskchat/internal/telemetry"
	"github.com/cleitonmarx/symbiont-taskchat/internal/usecases"
)

// NewTaskChatApp creates and returns a new instance of the TaskChat application.
func NewTaskChatApp(initializers ...symbiont.Initializer) *symbiont.App {
	return symbiont.NewApp().
		Initialize(initializers...).
		Initialize(
			&config.InitConfigProviders{},
			&log.InitLogger{},
			&telemetry.InitOpenTelemetry{},
			&telemetry.InitHttpClient{},
			&postgres.InitDB{},
			&postgres.InitUnitOfWork{},
			&postgres.InitUserRepository{},
			&postgres.InitTaskRepository{},
			&postgres.InitConversationRepository{},
			&postgres.InitMessageRepository{},
			&time.InitClock{},
			&security.InitBcryptHasher{},
			&security.InitJWTIssuer{},
			&redis.InitRevocationStore{},
			&modelrunner.InitLLMClient{},

			&usecases.InitTaskCreator{},
			&usecases.InitTaskUpdater{},
			&usecases.InitTaskDeleter{},
			&usecases.InitListTasks{},
			&assistant.InitToolRegistry{},
			&assistant.InitChatAgent{},

			&usecases.InitRegisterUser{},
			&usecases.InitLoginUser{},
			&usecases.InitLogoutUser{},
			&usecases.InitAuthenticateToken{},
			&usecases.InitCreateTask{},
			&usecases.InitGetTask{},
			&usecases.InitUpdateTask{},
			&usecases.InitDeleteTask{},
			&usecases.InitSendChatMessage{},
			&usecases.InitListConversations{},
			&usecases.InitGetConversation{},
		).
		Host(
			&http.TaskChatServer{},
		).
		Introspect(&MermaidGraphIntrospector{})
}
