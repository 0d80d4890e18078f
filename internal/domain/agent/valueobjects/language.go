package valueobjects

type Language string

const (
	LanguagePortuguese Language = "portugues"
	LanguageEnglish    Language = "ingles"
	LanguageSpanish    Language = "espanhol"
)

var languages = []Language{LanguagePortuguese, LanguageEnglish, LanguageSpanish}

func Languages() []Language {
	return append([]Language(nil), languages...)
}

func (l Language) String() string { return string(l) }

func (l Language) IsValid() bool {
	switch l {
	case LanguagePortuguese, LanguageEnglish, LanguageSpanish:
		return true
	}
	return false
}

func (l Language) Label() string {
	switch l {
	case LanguagePortuguese:
		return "Português"
	case LanguageEnglish:
		return "Inglês"
	case LanguageSpanish:
		return "Espanhol"
	default:
		return "Idioma padrão"
	}
}

// PostAnalysisAction is what the agent does after analysing a document.
type PostAnalysisAction string

const (
	PostAnalysisSaveDraft      PostAnalysisAction = "salvar_rascunho"
	PostAnalysisSendToReview   PostAnalysisAction = "enviar_revisao"
	PostAnalysisNotifyUser     PostAnalysisAction = "notificar_usuario"
	PostAnalysisGenerateFiling PostAnalysisAction = "gerar_documento"
)

var postAnalysisActions = []PostAnalysisAction{
	PostAnalysisSaveDraft,
	PostAnalysisSendToReview,
	PostAnalysisNotifyUser,
	PostAnalysisGenerateFiling,
}

func PostAnalysisActions() []PostAnalysisAction {
	return append([]PostAnalysisAction(nil), postAnalysisActions...)
}

func (a PostAnalysisAction) String() string { return string(a) }

func (a PostAnalysisAction) IsValid() bool {
	switch a {
	case PostAnalysisSaveDraft, PostAnalysisSendToReview, PostAnalysisNotifyUser, PostAnalysisGenerateFiling:
		return true
	}
	return false
}

func (a PostAnalysisAction) Label() string {
	switch a {
	case PostAnalysisSaveDraft:
		return "Salvar como Rascunho"
	case PostAnalysisSendToReview:
		return "Enviar para Revisão"
	case PostAnalysisNotifyUser:
		return "Notificar Usuário"
	case PostAnalysisGenerateFiling:
		return "Gerar Documento"
	default:
		return "Ação padrão"
	}
}
