package sidechannel

import (
	"fmt"
	"html"
	"strings"

	"github.com/lexdoc-ai/lexdoc/internal/domain/accessrequest"
	"github.com/lexdoc-ai/lexdoc/internal/domain/shared/services"
	"github.com/lexdoc-ai/lexdoc/internal/domain/tenant"
	"github.com/lexdoc-ai/lexdoc/internal/domain/user"
)

const (
	senderPlatform  = "LexDoc AI"
	senderCorporate = "LexDoc AI Corporate"
	senderRequest   = "LexDoc AI - Solicitação de Acesso"
	senderApproved  = "LexDoc AI - Acesso Aprovado"
	senderRejected  = "LexDoc AI - Solicitação Negada"

	headerColor   = "#1e3a8a"
	approvedColor = "#10b981"
	rejectedColor = "#ef4444"
)

// Mailer renders the transactional emails. Links point at baseURL.
type Mailer struct {
	baseURL string
}

func NewMailer(baseURL string) *Mailer {
	return &Mailer{baseURL: strings.TrimRight(baseURL, "/")}
}

// UserWelcome is sent when an admin adds a user to the office.
func (m *Mailer) UserWelcome(to, name string, cargo user.Cargo) services.EmailMessage {
	body := fmt.Sprintf(`<h2>Olá, %s!</h2>
<p>Você foi adicionado à plataforma LexDoc AI como <strong>%s</strong>.</p>
<p>Para acessar a plataforma, faça login com seu e-mail:</p>
%s
<p style="color:#94a3b8;font-size:14px;">Se tiver dúvidas, entre em contato com o administrador do sistema.</p>`,
		esc(name), esc(cargo.Label()), m.button("Acessar Plataforma", "", headerColor))

	return services.EmailMessage{
		To:       []string{to},
		Subject:  "Bem-vindo ao LexDoc AI",
		HTMLBody: layout("⚖️ LexDoc AI", "", headerColor, body),
		FromName: senderPlatform,
	}
}

// TenantWelcome is sent to the admin who registered the office.
func (m *Mailer) TenantWelcome(to, adminName string, t *tenant.Tenant) services.EmailMessage {
	body := fmt.Sprintf(`<h2>Olá, %s!</h2>
<p>Sua empresa <strong>%s</strong> foi cadastrada com sucesso na plataforma LexDoc AI Corporate!</p>
<div style="border-left:4px solid #d4af37;padding:16px;margin:24px 0;">
<p><strong>CNPJ:</strong> %s</p>
<p><strong>Sigla:</strong> %s</p>
<p><strong>Domínio:</strong> %s</p>
</div>
<h3>🚀 Recursos Ativados:</h3>
<ul>
<li>Machine Learning Setorial</li>
<li>%d Departamentos com IA Independente</li>
<li>Classificação Automática de Documentos</li>
<li>Reorganização Inteligente de PDFs</li>
<li>Aprendizado Contínuo com Feedback</li>
</ul>
%s`,
		esc(adminName), esc(t.TradeName()), esc(tenant.FormatCNPJ(t.CNPJ())), esc(t.Sigla()),
		esc(t.CustomDomain()), len(tenant.DefaultDepartments()), m.button("Acessar Plataforma", "", "#d4af37"))

	return services.EmailMessage{
		To:       []string{to},
		Subject:  fmt.Sprintf("🎉 %s - Bem-vindo ao LexDoc AI Corporate", t.Sigla()),
		HTMLBody: layout("⚖️ LexDoc AI", "Corporate Edition", "#0f172a", body),
		FromName: senderCorporate,
	}
}

// AccessRequested notifies the office contact about a pending request.
func (m *Mailer) AccessRequested(to, officeName string, r *accessrequest.AccessRequest) services.EmailMessage {
	var details strings.Builder
	fmt.Fprintf(&details, "<p><strong>Nome:</strong> %s</p>\n", esc(r.UserName()))
	fmt.Fprintf(&details, "<p><strong>Email:</strong> %s</p>\n", esc(r.UserEmail()))
	if r.CPF() != "" {
		fmt.Fprintf(&details, "<p><strong>CPF:</strong> %s</p>\n", esc(r.CPF()))
	}
	fmt.Fprintf(&details, "<p><strong>Cargo Solicitado:</strong> %s</p>\n", esc(r.RequestedCargo().Label()))
	if r.OABNumber() != "" {
		fmt.Fprintf(&details, "<p><strong>OAB:</strong> %s/%s</p>\n", esc(r.OABNumber()), esc(r.OABUF()))
	}
	if r.Phone() != "" {
		fmt.Fprintf(&details, "<p><strong>Telefone:</strong> %s</p>\n", esc(r.Phone()))
	}
	if r.Message() != "" {
		fmt.Fprintf(&details, "<p><strong>Mensagem:</strong><br/>%s</p>\n", esc(r.Message()))
	}

	body := fmt.Sprintf(`<h2>Olá!</h2>
<p><strong>%s</strong> solicitou acesso à sua empresa <strong>%s</strong> na plataforma LexDoc AI.</p>
<div style="border-left:4px solid #3b82f6;padding:16px;margin:24px 0;">
%s</div>
%s
<p style="color:#94a3b8;font-size:13px;text-align:center;">Acesse a plataforma para aprovar ou rejeitar esta solicitação.</p>`,
		esc(r.UserName()), esc(officeName), details.String(), m.button("Revisar Solicitação", "/usuarios", headerColor))

	return services.EmailMessage{
		To:       []string{to},
		Subject:  fmt.Sprintf("🔔 Nova Solicitação de Acesso - %s", r.UserName()),
		HTMLBody: layout("⚖️ LexDoc AI", "Solicitação de Acesso Pendente", headerColor, body),
		FromName: senderRequest,
	}
}

func (m *Mailer) AccessApproved(r *accessrequest.AccessRequest) services.EmailMessage {
	body := fmt.Sprintf(`<h2>Olá, %s!</h2>
<p>Sua solicitação de acesso à empresa <strong>%s</strong> foi aprovada!</p>
<p>Você já pode acessar a plataforma LexDoc AI com todas as funcionalidades disponíveis para o cargo de <strong>%s</strong>.</p>
%s`,
		esc(r.UserName()), esc(r.CompanyName()), esc(r.RequestedCargo().Label()),
		m.button("Acessar Plataforma", "", approvedColor))

	return services.EmailMessage{
		To:       []string{r.UserEmail()},
		Subject:  "✅ Seu acesso foi aprovado!",
		HTMLBody: layout("✅ Acesso Aprovado!", "", approvedColor, body),
		FromName: senderApproved,
	}
}

func (m *Mailer) AccessRejected(r *accessrequest.AccessRequest) services.EmailMessage {
	reason := ""
	if r.RejectionReason() != "" {
		reason = fmt.Sprintf("<p><strong>Motivo:</strong> %s</p>\n", esc(r.RejectionReason()))
	}
	body := fmt.Sprintf(`<h2>Olá, %s</h2>
<p>Sua solicitação de acesso à empresa <strong>%s</strong> não foi aprovada.</p>
%s<p>Se você acredita que isso foi um erro, entre em contato diretamente com a empresa.</p>`,
		esc(r.UserName()), esc(r.CompanyName()), reason)

	return services.EmailMessage{
		To:       []string{r.UserEmail()},
		Subject:  "Solicitação de Acesso - Resposta",
		HTMLBody: layout("Solicitação Negada", "", rejectedColor, body),
		FromName: senderRejected,
	}
}

func (m *Mailer) button(label, path, color string) string {
	return fmt.Sprintf(`<div style="text-align:center;margin:30px 0;"><a href="%s" style="background:%s;color:white;padding:15px 30px;text-decoration:none;border-radius:8px;display:inline-block;">%s</a></div>`,
		esc(m.baseURL+path), color, esc(label))
}

func layout(title, subtitle, color, body string) string {
	sub := ""
	if subtitle != "" {
		sub = fmt.Sprintf(`<p style="color:white;margin-top:10px;">%s</p>`, esc(subtitle))
	}
	return fmt.Sprintf(`<div style="font-family:Arial,sans-serif;max-width:600px;margin:0 auto;">
<div style="background:%s;padding:30px;text-align:center;"><h1 style="color:#d4af37;margin:0;">%s</h1>%s</div>
<div style="padding:30px;background:#f8fafc;color:#334155;line-height:1.6;">
%s
</div>
</div>`, color, esc(title), sub, body)
}

func esc(s string) string {
	return html.EscapeString(s)
}
