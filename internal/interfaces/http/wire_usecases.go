package http

import (
	accessRequestUsecases "github.com/lexdoc-ai/lexdoc/internal/application/accessrequest/usecases"
	agentUsecases "github.com/lexdoc-ai/lexdoc/internal/application/agent/usecases"
	auditUsecases "github.com/lexdoc-ai/lexdoc/internal/application/audit/usecases"
	dashboardUsecases "github.com/lexdoc-ai/lexdoc/internal/application/dashboard/usecases"
	documentUsecases "github.com/lexdoc-ai/lexdoc/internal/application/document/usecases"
	filingUsecases "github.com/lexdoc-ai/lexdoc/internal/application/filing/usecases"
	"github.com/lexdoc-ai/lexdoc/internal/application/intake"
	caseUsecases "github.com/lexdoc-ai/lexdoc/internal/application/legalcase/usecases"
	organizationUsecases "github.com/lexdoc-ai/lexdoc/internal/application/organization/usecases"
	tenantUsecases "github.com/lexdoc-ai/lexdoc/internal/application/tenant/usecases"
	userUsecases "github.com/lexdoc-ai/lexdoc/internal/application/user/usecases"
)

// allUseCases groups every use case by area so handlers can be built in one pass.
type allUseCases struct {
	// Auth and members
	register      *userUsecases.RegisterUseCase
	login         *userUsecases.LoginUseCase
	refreshToken  *userUsecases.RefreshTokenUseCase
	getMe         *userUsecases.GetMeUseCase
	updateProfile *userUsecases.UpdateProfileUseCase
	listUsers     *userUsecases.ListUsersUseCase
	createUser    *userUsecases.CreateUserUseCase
	updateCargo   *userUsecases.UpdateCargoUseCase
	deleteUser    *userUsecases.DeleteUserUseCase

	// Tenant
	onboardTenant     *tenantUsecases.OnboardTenantUseCase
	getTenant         *tenantUsecases.GetTenantUseCase
	updateCompanyData *tenantUsecases.UpdateCompanyDataUseCase
	updateSettings    *tenantUsecases.UpdateSettingsUseCase
	updateBranding    *tenantUsecases.UpdateBrandingUseCase
	uploadLogo        *tenantUsecases.UploadLogoUseCase
	listDepartments   *tenantUsecases.ListDepartmentsUseCase

	// Access requests
	submitAccessRequest  *accessRequestUsecases.SubmitAccessRequestUseCase
	listAccessRequests   *accessRequestUsecases.ListAccessRequestsUseCase
	approveAccessRequest *accessRequestUsecases.ApproveAccessRequestUseCase
	rejectAccessRequest  *accessRequestUsecases.RejectAccessRequestUseCase

	// Cases
	createCase *caseUsecases.CreateCaseUseCase
	listCases  *caseUsecases.ListCasesUseCase
	getCase    *caseUsecases.GetCaseUseCase
	updateCase *caseUsecases.UpdateCaseUseCase
	deleteCase *caseUsecases.DeleteCaseUseCase

	// Intake and documents
	analyzeDocument *intake.AnalyzeDocumentUseCase
	generateFiling  *intake.GenerateFilingUseCase
	listDocuments   *documentUsecases.ListDocumentsUseCase
	getDocument     *documentUsecases.GetDocumentUseCase
	deleteDocument  *documentUsecases.DeleteDocumentUseCase

	// Filings
	listFilings          *filingUsecases.ListFilingsUseCase
	getFiling            *filingUsecases.GetFilingUseCase
	updateFiling         *filingUsecases.UpdateFilingUseCase
	deleteFiling         *filingUsecases.DeleteFilingUseCase
	linkCase             *filingUsecases.LinkCaseUseCase
	createCaseFromFiling *filingUsecases.CreateCaseFromFilingUseCase
	exportFilingPDF      *filingUsecases.ExportFilingPDFUseCase

	// Agents
	createAgent *agentUsecases.CreateAgentUseCase
	listAgents  *agentUsecases.ListAgentsUseCase
	getAgent    *agentUsecases.GetAgentUseCase
	updateAgent *agentUsecases.UpdateAgentUseCase
	toggleAgent *agentUsecases.ToggleAgentUseCase
	deleteAgent *agentUsecases.DeleteAgentUseCase
	testAgent   *agentUsecases.TestAgentUseCase

	// Organization
	startBatch             *organizationUsecases.StartBatchUseCase
	getBatch               *organizationUsecases.GetBatchUseCase
	listOrganizedDocuments *organizationUsecases.ListOrganizedDocumentsUseCase

	// Dashboard and audit
	getDashboard  *dashboardUsecases.GetDashboardUseCase
	listAuditLogs *auditUsecases.ListAuditLogsUseCase
}

func (c *Container) initUseCases() {
	r := c.repos
	log := c.log
	sessions := c.sessionResolver
	side := c.sideChan

	c.ucs = &allUseCases{
		register:      userUsecases.NewRegisterUseCase(r.userRepo, c.hasher, c.jwtService, log),
		login:         userUsecases.NewLoginUseCase(r.userRepo, c.hasher, c.jwtService, log),
		refreshToken:  userUsecases.NewRefreshTokenUseCase(c.jwtService, log),
		getMe:         userUsecases.NewGetMeUseCase(r.userRepo, log),
		updateProfile: userUsecases.NewUpdateProfileUseCase(r.userRepo, sessions, log),
		listUsers:     userUsecases.NewListUsersUseCase(r.userRepo, log),
		createUser:    userUsecases.NewCreateUserUseCase(r.userRepo, c.hasher, c.mailer, side, log),
		updateCargo:   userUsecases.NewUpdateCargoUseCase(r.userRepo, sessions, log),
		deleteUser:    userUsecases.NewDeleteUserUseCase(r.userRepo, sessions, log),

		onboardTenant:     tenantUsecases.NewOnboardTenantUseCase(r.tenantRepo, r.deptRepo, r.userRepo, c.txManager, sessions, c.mailer, side, log),
		getTenant:         tenantUsecases.NewGetTenantUseCase(r.tenantRepo, log),
		updateCompanyData: tenantUsecases.NewUpdateCompanyDataUseCase(r.tenantRepo, log),
		updateSettings:    tenantUsecases.NewUpdateSettingsUseCase(r.tenantRepo, log),
		updateBranding:    tenantUsecases.NewUpdateBrandingUseCase(r.tenantRepo, log),
		uploadLogo:        tenantUsecases.NewUploadLogoUseCase(r.tenantRepo, c.storage, log),
		listDepartments:   tenantUsecases.NewListDepartmentsUseCase(r.deptRepo, log),

		submitAccessRequest:  accessRequestUsecases.NewSubmitAccessRequestUseCase(r.accessRequestRepo, r.tenantRepo, r.userRepo, c.mailer, side, log),
		listAccessRequests:   accessRequestUsecases.NewListAccessRequestsUseCase(r.accessRequestRepo, log),
		approveAccessRequest: accessRequestUsecases.NewApproveAccessRequestUseCase(r.accessRequestRepo, r.userRepo, c.txManager, sessions, c.mailer, side, log),
		rejectAccessRequest:  accessRequestUsecases.NewRejectAccessRequestUseCase(r.accessRequestRepo, c.mailer, side, log),

		createCase: caseUsecases.NewCreateCaseUseCase(r.caseRepo, side, log),
		listCases:  caseUsecases.NewListCasesUseCase(r.caseRepo, log),
		getCase:    caseUsecases.NewGetCaseUseCase(r.caseRepo, r.docRepo, r.filingRepo, log),
		updateCase: caseUsecases.NewUpdateCaseUseCase(r.caseRepo, log),
		deleteCase: caseUsecases.NewDeleteCaseUseCase(r.caseRepo, r.docRepo, r.filingRepo, c.txManager, log),

		analyzeDocument: intake.NewAnalyzeDocumentUseCase(
			c.storage, c.extractor, c.llmRouter, c.prompts,
			r.docRepo, r.caseRepo, r.agentRepo,
			c.agentMetrics, c.uploadPolicy, side, log,
		),
		generateFiling: intake.NewGenerateFilingUseCase(
			r.docRepo, r.filingRepo, r.agentRepo,
			c.llmRouter, c.prompts, c.markdown, c.txManager,
			c.agentMetrics, side, log,
		),
		listDocuments:  documentUsecases.NewListDocumentsUseCase(r.docRepo, log),
		getDocument:    documentUsecases.NewGetDocumentUseCase(r.docRepo, log),
		deleteDocument: documentUsecases.NewDeleteDocumentUseCase(r.docRepo, c.storage, log),

		listFilings:          filingUsecases.NewListFilingsUseCase(r.filingRepo, log),
		getFiling:            filingUsecases.NewGetFilingUseCase(r.filingRepo, log),
		updateFiling:         filingUsecases.NewUpdateFilingUseCase(r.filingRepo, c.markdown, side, log),
		deleteFiling:         filingUsecases.NewDeleteFilingUseCase(r.filingRepo, r.docRepo, c.txManager, log),
		linkCase:             filingUsecases.NewLinkCaseUseCase(r.filingRepo, r.caseRepo, log),
		createCaseFromFiling: filingUsecases.NewCreateCaseFromFilingUseCase(r.filingRepo, r.docRepo, r.caseRepo, c.txManager, side, log),
		exportFilingPDF:      filingUsecases.NewExportFilingPDFUseCase(r.filingRepo, r.caseRepo, r.tenantRepo, c.exporter, log),

		createAgent: agentUsecases.NewCreateAgentUseCase(r.agentRepo, log),
		listAgents:  agentUsecases.NewListAgentsUseCase(r.agentRepo, log),
		getAgent:    agentUsecases.NewGetAgentUseCase(r.agentRepo, log),
		updateAgent: agentUsecases.NewUpdateAgentUseCase(r.agentRepo, log),
		toggleAgent: agentUsecases.NewToggleAgentUseCase(r.agentRepo, log),
		deleteAgent: agentUsecases.NewDeleteAgentUseCase(r.agentRepo, log),
		testAgent:   agentUsecases.NewTestAgentUseCase(r.agentRepo, c.extractor, c.llmRouter, c.prompts, c.uploadPolicy, log),

		startBatch: organizationUsecases.NewStartBatchUseCase(
			c.storage, c.extractor, c.llmRouter, c.prompts,
			r.organizedDocRepo, c.batchStore, r.agentRepo,
			c.uploadPolicy, c.cfg.Workflow.OrganizeBatchLimit, side, log,
		),
		getBatch:               organizationUsecases.NewGetBatchUseCase(c.batchStore, log),
		listOrganizedDocuments: organizationUsecases.NewListOrganizedDocumentsUseCase(r.organizedDocRepo, log),

		getDashboard:  dashboardUsecases.NewGetDashboardUseCase(r.caseRepo, r.docRepo, r.filingRepo, r.agentRepo, r.auditRepo, log),
		listAuditLogs: auditUsecases.NewListAuditLogsUseCase(r.auditRepo, log),
	}
}
