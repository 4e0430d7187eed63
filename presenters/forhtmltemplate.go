package presenters

import (
	"bytes"
	"html/template"
	"io"

	"github.com/adamluzsi/presentable"
)

// ErrNoTemplate returned when an HTML template presenter is constructed without any template.
const ErrNoTemplate presentable.Error = "no template given"

// ForHTMLTemplate creates a factory whose presenters render the wrapped subject
// through the given template chain.
// The last template is the most inner one and receives the subject as its data,
// every template before it wraps the already rendered content as template.HTML.
func ForHTMLTemplate(ts ...*template.Template) presentable.Factory {
	return presentable.Factory(func(subject presentable.Subject, view presentable.View, opts presentable.Options) (presentable.Presenter, error) {
		if len(ts) == 0 {
			return nil, ErrNoTemplate
		}

		return &HTMLTemplatePresenter{
			Base:      NewBase(subject, view, opts),
			templates: ts,
		}, nil
	})
}

// HTMLTemplatePresenter renders its subject with a nested html/template chain.
type HTMLTemplatePresenter struct {
	*Base
	templates []*template.Template
}

// Render executes the template chain with the wrapped subject and writes the result to w.
func (p *HTMLTemplatePresenter) Render(w io.Writer) error {
	mostInnerTemplate := p.templates[len(p.templates)-1]
	tContent := bytes.NewBuffer([]byte{})

	if err := mostInnerTemplate.Execute(tContent, p.Subject()); err != nil {
		return err
	}

	rest := p.templates[:len(p.templates)-1]
	currentContent := tContent.String()

	for i := len(rest) - 1; i >= 0; i-- {
		t := rest[i]
		b := bytes.NewBuffer([]byte{})

		if err := t.Execute(b, template.HTML(currentContent)); err != nil {
			return err
		}

		currentContent = b.String()
	}

	_, err := w.Write([]byte(currentContent))
	return err
}
