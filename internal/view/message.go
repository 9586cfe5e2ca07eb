package view

import "html/template"

// MessageKind picks the alert styling.
type MessageKind string

const (
	MessageSuccess MessageKind = "success"
	MessageError   MessageKind = "error"
	MessageInfo    MessageKind = "info"
)

var messageTmpl = template.Must(template.New("message").Parse(`
<div id="message" class="alert alert-{{.Class}} alert-dismissible fade show" role="alert" data-timeout="5000">
  {{.Text}}
  <button type="button" class="btn-close" data-bs-dismiss="alert"></button>
</div>`))

// Message is the single message-display contract of the whole UI: one fixed
// region, dismissible, auto-hidden after five seconds by the markup's
// data-timeout.
func Message(text string, kind MessageKind) template.HTML {
	class := "info"
	switch kind {
	case MessageSuccess:
		class = "success"
	case MessageError:
		class = "danger"
	}
	return exec(messageTmpl, map[string]any{"Text": text, "Class": class})
}

var loadingTmpl = template.Must(template.New("loading").Parse(`
<div class="text-center">
  <div class="spinner-border text-primary" role="status"><span class="visually-hidden">Carregando...</span></div>
  <p class="mt-2">{{.}}</p>
</div>`))

func Loading(what string) template.HTML {
	return exec(loadingTmpl, what)
}

var retryTmpl = template.Must(template.New("retry").Parse(`
<div class="text-center">
  <div class="alert alert-danger">{{.Text}}</div>
  <a class="btn btn-primary" href="{{.RetryURL}}">Tentar Novamente</a>
</div>`))

// ErrorRetry replaces a panel's content after a failed load. No partial or
// cached data survives next to it; retrying is the user's click.
func ErrorRetry(text, retryURL string) template.HTML {
	return exec(retryTmpl, map[string]any{"Text": text, "RetryURL": retryURL})
}

var confirmTmpl = template.Must(template.New("confirm").Parse(`
<div class="card">
  <div class="card-body text-center">
    <h5>{{.Title}}</h5>
    <p>{{.Body}} <strong>{{.Subject}}</strong>? Esta ação não pode ser desfeita.</p>
    <form method="post" action="{{.Action}}">
      <input type="hidden" name="confirmed" value="true">
      <button type="submit" class="btn btn-danger">Confirmar</button>
      <a class="btn btn-secondary" href="{{.Cancel}}">Cancelar</a>
    </form>
  </div>
</div>`))

// Confirm renders the typed-name confirmation step every destructive action
// goes through before any request is issued.
func Confirm(title, body, subject, action, cancel string) template.HTML {
	return exec(confirmTmpl, map[string]any{
		"Title": title, "Body": body, "Subject": subject,
		"Action": action, "Cancel": cancel,
	})
}
