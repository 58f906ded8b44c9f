package server

import (
	"mime"
	"net/http"

	"github.com/nconklindev/rowify/internal/download"
	"github.com/nconklindev/rowify/internal/form"
	"github.com/nconklindev/rowify/internal/tokenizer"
	"github.com/nconklindev/rowify/internal/types"

	"github.com/labstack/echo/v4"
)

const HeaderConversionID = "X-Conversion-ID"

const formTemplate = "form.html"

type fieldView struct {
	Name        string
	Value       string
	Placeholder string
	Error       string
}

type exampleView struct {
	Input  string
	Header string
	Rows   []string
}

type pageView struct {
	Title   string
	UseCase string
	Row     []fieldView
	Main    fieldView
	Example exampleView
}

func newPageView(st form.State) pageView {
	field := func(name string) fieldView {
		return fieldView{
			Name:        name,
			Value:       st.Value(name),
			Placeholder: form.Placeholders[name],
			Error:       st.Error(name),
		}
	}

	return pageView{
		Title:   form.Title,
		UseCase: form.UseCase,
		Row:     []fieldView{field(form.FieldFileName), field(form.FieldHeader)},
		Main:    field(form.FieldInputString),
		Example: exampleView{
			Input:  form.ExampleInput,
			Header: form.ExampleHeader,
			Rows:   tokenizer.Tokenize(form.ExampleInput),
		},
	}
}

func (s *Server) index(c echo.Context) error {
	return c.Render(http.StatusOK, formTemplate, newPageView(form.Reset()))
}

func (s *Server) convert(c echo.Context) error {
	st := form.State{Input: types.FormInput{
		InputString: c.FormValue(form.FieldInputString),
		FileName:    c.FormValue(form.FieldFileName),
		Header:      c.FormValue(form.FieldHeader),
	}}

	var buf download.Buffer
	next, result, err := s.svc.Submit(c.Request().Context(), st, &buf)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "conversion failed").SetInternal(err)
	}

	if result == nil {
		return c.Render(http.StatusUnprocessableEntity, formTemplate, newPageView(next))
	}

	disposition := mime.FormatMediaType("attachment", map[string]string{"filename": buf.Name})
	c.Response().Header().Set(echo.HeaderContentDisposition, disposition)
	c.Response().Header().Set(HeaderConversionID, result.ID)

	return c.Blob(http.StatusOK, download.ContentType, buf.Data)
}
