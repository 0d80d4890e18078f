package constants

const (
	EnvDevelopment = "development"
	EnvTest        = "test"
	EnvProduction  = "production"

	DefaultPage     = 1
	DefaultPageSize = 20
	MaxPageSize     = 100

	HeaderAuthorization = "Authorization"
	HeaderXRequestID    = "X-Request-ID"

	ContextKeyUserID    = "user_id"
	ContextKeySessionID = "session_id"
	ContextKeyUserRole  = "user_role"
	ContextKeyRequestID = "request_id"
	ContextKeySession   = "session"

	ErrMsgInternalServerError = "Internal server error occurred"
)

// Table names
const (
	TableTenants            = "escritorios"
	TableDepartments        = "departamentos"
	TableUsers              = "usuarios"
	TableAccessRequests     = "solicitacoes_acesso"
	TableCases              = "casos"
	TableDocuments          = "documentos"
	TableFilings            = "pecas_processuais"
	TableAgents             = "agentes_llm"
	TableOrganizedDocuments = "documentos_organizados"
	TableAuditLogs          = "logs_auditoria"
)
