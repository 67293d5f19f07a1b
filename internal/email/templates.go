package email

import (
	"fmt"
	"html/template"
	"strings"

	"github.com/skorelabs/skore-api/internal/catalog"
)

// Email bodies mirror the marketing site's transactional templates, reduced
// to table-free email-safe HTML plus a plain-text alternative.

var downloadHTMLTemplate = template.Must(template.New("download").Parse(`<!DOCTYPE html>
<html lang="en">
<body style="margin:0;padding:0;font-family:-apple-system,'Segoe UI',Roboto,Arial,sans-serif;background-color:#f3f4f6;">
  <div style="max-width:600px;margin:40px auto;background:#ffffff;border-radius:8px;overflow:hidden;">
    <div style="background:linear-gradient(135deg,#1e3a8a 0%,#2563eb 100%);padding:40px;text-align:center;">
      <h1 style="margin:0;color:#ffffff;font-size:28px;">SKORE</h1>
      <p style="margin:10px 0 0;color:#bfdbfe;font-size:14px;">Evidence-Based Organizational Tools</p>
    </div>
    <div style="padding:40px;">
      <h2 style="margin:0 0 20px;color:#111827;">Hi {{.Name}}! &#128075;</h2>
      <p style="color:#4b5563;font-size:16px;line-height:1.6;">
        Thanks for downloading <strong>{{.Resource.Title}}</strong>.
        We hope this {{.TypeLower}} helps you translate organizational science into action.
      </p>
      <div style="background:#f9fafb;border:1px solid #e5e7eb;border-radius:8px;padding:24px;margin:30px 0;">
        <p style="margin:0 0 8px;color:#6b7280;font-size:12px;text-transform:uppercase;">{{.Resource.Type}}</p>
        <h3 style="margin:0 0 12px;color:#111827;">{{.Resource.Title}}</h3>
        <p style="margin:0;color:#6b7280;font-size:14px;">{{.Resource.Description}}</p>
      </div>
      <p style="text-align:center;margin:30px 0;">
        <a href="{{.DownloadURL}}" style="display:inline-block;background:#2563eb;color:#ffffff;text-decoration:none;padding:16px 32px;border-radius:8px;font-weight:600;">Download {{.Resource.Title}}</a>
      </p>
      <p style="color:#6b7280;font-size:14px;">This download link will expire in <strong>24 hours</strong>. If you need help, just reply to this email.</p>
{{- if .Resource.Includes}}
      <div style="background:#eff6ff;border-left:4px solid #2563eb;padding:20px;margin:30px 0;">
        <p style="margin:0 0 12px;color:#1e40af;font-weight:600;font-size:14px;">What's Included:</p>
        <ul style="margin:0;padding-left:20px;color:#1e40af;font-size:14px;">
{{- range .Resource.Includes}}
          <li>{{.}}</li>
{{- end}}
        </ul>
      </div>
{{- end}}
      <p style="color:#9ca3af;font-size:12px;">You're receiving this email because you downloaded a resource from SKORE.
        Browse the full library at <a href="{{.SiteURL}}/resources">{{.SiteURL}}/resources</a>.</p>
    </div>
  </div>
</body>
</html>
`))

var welcomeHTMLTemplate = template.Must(template.New("welcome").Parse(`<!DOCTYPE html>
<html lang="en">
<body style="margin:0;padding:0;font-family:-apple-system,'Segoe UI',Roboto,Arial,sans-serif;background-color:#f3f4f6;">
  <div style="max-width:600px;margin:40px auto;background:#ffffff;border-radius:8px;overflow:hidden;">
    <div style="background:linear-gradient(135deg,#1e3a8a 0%,#2563eb 100%);padding:40px;text-align:center;">
      <h1 style="margin:0;color:#ffffff;font-size:28px;">SKORE</h1>
    </div>
    <div style="padding:40px;">
      <h2 style="margin:0 0 20px;color:#111827;">Welcome aboard, {{.Name}}!</h2>
      <p style="color:#4b5563;font-size:16px;line-height:1.6;">
        You're now subscribed to the SKORE newsletter. Expect practical, evidence-based
        organizational tools and research summaries in your inbox, and nothing else.
      </p>
      <p style="text-align:center;margin:30px 0;">
        <a href="{{.SiteURL}}/resources" style="display:inline-block;background:#2563eb;color:#ffffff;text-decoration:none;padding:16px 32px;border-radius:8px;font-weight:600;">Browse Free Resources</a>
      </p>
      <p style="color:#9ca3af;font-size:12px;">You're receiving this email because you subscribed at {{.SiteURL}}.</p>
    </div>
  </div>
</body>
</html>
`))

var contactAdminHTMLTemplate = template.Must(template.New("contact_admin").Parse(`<h2>New Contact Form Submission</h2>
<p><strong>Name:</strong> {{.Name}}</p>
<p><strong>Email:</strong> {{.Email}}</p>
{{- if .Company}}
<p><strong>Company:</strong> {{.Company}}</p>
{{- end}}
<p><strong>Message:</strong></p>
<p style="white-space:pre-wrap">{{.Message}}</p>
<hr/>
<small>Reply to this email to respond directly to {{.Name}}.</small>
`))

var contactAckHTMLTemplate = template.Must(template.New("contact_ack").Parse(`<h2>Thanks for contacting us, {{.Name}}!</h2>
<p>We've received your message and will get back to you shortly.</p>
<p>In the meantime, feel free to explore our <a href="{{.SiteURL}}/resources">free resources</a>.</p>
<hr/>
<p><strong>Your message:</strong></p>
<p style="white-space:pre-wrap">{{.Message}}</p>
`))

type downloadTemplateData struct {
	Name        string
	Resource    catalog.Resource
	TypeLower   string
	DownloadURL string
	SiteURL     string
}

type welcomeTemplateData struct {
	Name    string
	SiteURL string
}

type contactTemplateData struct {
	Name    string
	Email   string
	Company string
	Message string
	SiteURL string
}

func renderDownloadHTML(name string, resource catalog.Resource, downloadURL, siteURL string) (string, error) {
	var out strings.Builder
	err := downloadHTMLTemplate.Execute(&out, downloadTemplateData{
		Name:        greetingName(name),
		Resource:    resource,
		TypeLower:   strings.ToLower(resource.Type),
		DownloadURL: downloadURL,
		SiteURL:     siteURL,
	})
	return out.String(), err
}

func renderDownloadText(name string, resource catalog.Resource, downloadURL, siteURL string) string {
	var out strings.Builder
	fmt.Fprintf(&out, "Hi %s!\n\n", greetingName(name))
	fmt.Fprintf(&out, "Thanks for downloading %s.\n\n", resource.Title)
	fmt.Fprintf(&out, "Download it here: %s\n\n", downloadURL)
	out.WriteString("This download link will expire in 24 hours.\n\n")
	fmt.Fprintf(&out, "Browse more free resources: %s/resources\n", siteURL)
	return out.String()
}

func renderWelcomeHTML(name, siteURL string) (string, error) {
	var out strings.Builder
	err := welcomeHTMLTemplate.Execute(&out, welcomeTemplateData{
		Name:    greetingName(name),
		SiteURL: siteURL,
	})
	return out.String(), err
}

func renderContactAdminHTML(data contactTemplateData) (string, error) {
	var out strings.Builder
	err := contactAdminHTMLTemplate.Execute(&out, data)
	return out.String(), err
}

func renderContactAckHTML(data contactTemplateData) (string, error) {
	var out strings.Builder
	err := contactAckHTMLTemplate.Execute(&out, data)
	return out.String(), err
}

func greetingName(name string) string {
	if strings.TrimSpace(name) == "" {
		return "there"
	}
	return strings.TrimSpace(name)
}
