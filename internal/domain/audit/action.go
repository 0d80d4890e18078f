package audit

type Action string

const (
	ActionDocumentUploaded     Action = "upload_documento"
	ActionAnalysisStarted      Action = "analise_iniciada"
	ActionFilingGenerated      Action = "minuta_gerada"
	ActionFilingApproved       Action = "minuta_aprovada"
	ActionCaseCreated          Action = "caso_criado"
	ActionTenantRegistered     Action = "cadastro_escritorio"
	ActionUserCreated          Action = "usuario_criado"
	ActionAccessApproved       Action = "acesso_aprovado"
	ActionAccessRejected       Action = "acesso_rejeitado"
	ActionOrganizationFinished Action = "organizacao_concluida"
)

func Actions() []Action {
	return []Action{
		ActionDocumentUploaded,
		ActionAnalysisStarted,
		ActionFilingGenerated,
		ActionFilingApproved,
		ActionCaseCreated,
		ActionTenantRegistered,
		ActionUserCreated,
		ActionAccessApproved,
		ActionAccessRejected,
		ActionOrganizationFinished,
	}
}

func (a Action) String() string {
	return string(a)
}

func (a Action) IsValid() bool {
	for _, v := range Actions() {
		if v == a {
			return true
		}
	}
	return false
}

func (a Action) Label() string {
	switch a {
	case ActionDocumentUploaded:
		return "Upload de documento"
	case ActionAnalysisStarted:
		return "Análise iniciada"
	case ActionFilingGenerated:
		return "Minuta gerada"
	case ActionFilingApproved:
		return "Minuta aprovada"
	case ActionCaseCreated:
		return "Caso criado"
	case ActionTenantRegistered:
		return "Cadastro de escritório"
	case ActionUserCreated:
		return "Usuário criado"
	case ActionAccessApproved:
		return "Acesso aprovado"
	case ActionAccessRejected:
		return "Acesso rejeitado"
	case ActionOrganizationFinished:
		return "Organização concluída"
	default:
		return "Ação"
	}
}
