package http

import (
	"github.com/lexdoc-ai/lexdoc/internal/interfaces/http/handlers"
	"github.com/lexdoc-ai/lexdoc/internal/interfaces/http/handlers/accessrequest"
	"github.com/lexdoc-ai/lexdoc/internal/interfaces/http/handlers/agent"
	"github.com/lexdoc-ai/lexdoc/internal/interfaces/http/handlers/document"
	"github.com/lexdoc-ai/lexdoc/internal/interfaces/http/handlers/filing"
	"github.com/lexdoc-ai/lexdoc/internal/interfaces/http/handlers/legalcase"
	"github.com/lexdoc-ai/lexdoc/internal/interfaces/http/handlers/member"
	"github.com/lexdoc-ai/lexdoc/internal/interfaces/http/handlers/organization"
	"github.com/lexdoc-ai/lexdoc/internal/interfaces/http/handlers/tenant"
)

type allHandlers struct {
	authHandler          *handlers.AuthHandler
	healthHandler        *handlers.HealthHandler
	dashboardHandler     *handlers.DashboardHandler
	tenantHandler        *tenant.Handler
	accessRequestHandler *accessrequest.Handler
	memberHandler        *member.Handler
	caseHandler          *legalcase.Handler
	documentHandler      *document.Handler
	filingHandler        *filing.Handler
	agentHandler         *agent.Handler
	organizationHandler  *organization.Handler
}

func (c *Container) initHandlers() {
	u := c.ucs
	log := c.log
	maxUpload := c.uploadPolicy.MaxBytes()

	c.hdlrs = &allHandlers{
		authHandler: handlers.NewAuthHandler(
			u.register, u.login, u.refreshToken, u.getMe, u.updateProfile, log,
		),
		healthHandler:    handlers.NewHealthHandler(c.healthChecks()...),
		dashboardHandler: handlers.NewDashboardHandler(u.getDashboard, u.listAuditLogs, log),
		tenantHandler: tenant.NewHandler(
			u.onboardTenant, u.getTenant, u.updateCompanyData, u.updateSettings,
			u.updateBranding, u.uploadLogo, u.listDepartments, log,
		),
		accessRequestHandler: accessrequest.NewHandler(
			u.submitAccessRequest, u.listAccessRequests, u.approveAccessRequest, u.rejectAccessRequest, log,
		),
		memberHandler: member.NewHandler(u.listUsers, u.createUser, u.updateCargo, u.deleteUser, log),
		caseHandler: legalcase.NewHandler(
			u.createCase, u.listCases, u.getCase, u.updateCase, u.deleteCase, log,
		),
		documentHandler: document.NewHandler(
			u.analyzeDocument, u.generateFiling, u.listDocuments, u.getDocument, u.deleteDocument,
			maxUpload, log,
		),
		filingHandler: filing.NewHandler(
			u.listFilings, u.getFiling, u.updateFiling, u.deleteFiling,
			u.linkCase, u.createCaseFromFiling, u.exportFilingPDF, log,
		),
		agentHandler: agent.NewHandler(
			u.createAgent, u.listAgents, u.getAgent, u.updateAgent,
			u.toggleAgent, u.deleteAgent, u.testAgent, maxUpload, log,
		),
		organizationHandler: organization.NewHandler(
			u.startBatch, u.getBatch, u.listOrganizedDocuments, c.sse, maxUpload, log,
		),
	}
}
