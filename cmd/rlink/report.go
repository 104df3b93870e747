package main

import (
	"fmt"
	"html"
	"io"
	"sort"
	"strings"
	"text/tabwriter"

	"github.com/rohanthewiz/element"

	"github.com/rohanthewiz/rlink"
	"github.com/rohanthewiz/rlink/consts"
)

// report is a titled table rendered as aligned text or as an HTML page.
type report struct {
	Title   string
	Note    string
	Headers []string
	Rows    [][]string
}

func (r report) write(w io.Writer, format string) error {
	if format == consts.FormatHTML {
		b := element.NewBuilder()
		element.RenderComponents(b, pageLayout{Title: r.Title, Body: r})
		_, err := io.WriteString(w, b.String())
		return err
	}
	return r.writeText(w)
}

func (r report) writeText(w io.Writer) error {
	fmt.Fprintln(w, r.Title)
	if r.Note != "" {
		fmt.Fprintln(w, r.Note)
	}
	fmt.Fprintln(w)

	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, strings.Join(r.Headers, "\t"))
	for _, row := range r.Rows {
		fmt.Fprintln(tw, strings.Join(row, "\t"))
	}
	return tw.Flush()
}

// Render writes the report table. Links and route values come from
// untrusted input, so every text node is escaped.
func (r report) Render(b *element.Builder) any {
	b.H1().T(html.EscapeString(r.Title))
	if r.Note != "" {
		b.P().T(html.EscapeString(r.Note))
	}

	b.Table().R(
		b.Tr().R(
			func() any {
				for _, h := range r.Headers {
					b.Th().T(html.EscapeString(h))
				}
				return nil
			}(),
		),
		func() any {
			for _, row := range r.Rows {
				b.Tr().R(
					func() any {
						for _, cell := range row {
							b.Td().R(b.Code().T(html.EscapeString(cell)))
						}
						return nil
					}(),
				)
			}
			return nil
		}(),
	)
	return nil
}

type pageLayout struct {
	Title string
	Body  element.Component
}

func (p pageLayout) Render(b *element.Builder) any {
	b.Html().R(
		b.Head().R(
			b.Title().T(html.EscapeString(p.Title)),
			b.Style().T(`
				body { font-family: sans-serif; max-width: 960px; margin: 0 auto; padding: 20px; }
				table { border-collapse: collapse; width: 100%; }
				th, td { border: 1px solid #ccc; padding: 6px 10px; text-align: left; }
				th { background: #f0f0f0; }
			`),
		),
		b.Body().R(
			element.RenderComponents(b, p.Body),
		),
	)
	return nil
}

func routesReport(reg *rlink.Registry) report {
	rep := report{
		Title:   "Registered routes",
		Note:    "Conflict mode: " + reg.Mode().String(),
		Headers: []string{"#", "Template", "Placeholders", "Route type"},
	}
	for i, rl := range reg.Routes() {
		rep.Rows = append(rep.Rows, []string{
			fmt.Sprint(i + 1),
			rl.Template,
			strings.Join(rl.Placeholders, ", "),
			rl.RouteType,
		})
	}
	return rep
}

func resolvedReport(reg *rlink.Registry, link string, routes []any) report {
	rep := report{
		Title:   "Resolved link",
		Note:    link,
		Headers: []string{"#", "Template", "Route", "Values"},
	}
	for i, route := range routes {
		template, _ := reg.TemplateFor(route)
		rep.Rows = append(rep.Rows, []string{fmt.Sprint(i + 1), template, routeName(route), routeValues(route)})
	}
	return rep
}

func stackReport(link string, host *rlink.MemoryHost) report {
	rep := report{
		Title:   "Back stack",
		Note:    link,
		Headers: []string{"Depth", "Template", "Route", "Values"},
	}
	for i, d := range host.Stack() {
		rep.Rows = append(rep.Rows, []string{fmt.Sprint(i), d.Template, routeName(d.Route), routeValues(d.Route)})
	}
	for _, op := range host.Ops() {
		rep.Note += fmt.Sprintf("\n%s %s", op.Op, strings.Join(op.Templates, consts.StackSeparator))
	}
	return rep
}

func routeName(route any) string {
	if d, ok := route.(rlink.DynamicRoute); ok {
		return d.Name
	}
	return fmt.Sprintf("%T", route)
}

// routeValues renders route parameters as key=value pairs ordered by key.
func routeValues(route any) string {
	d, ok := route.(rlink.DynamicRoute)
	if !ok {
		return fmt.Sprintf("%+v", route)
	}

	keys := make([]string, 0, len(d.Values))
	for k := range d.Values {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	pairs := make([]string, len(keys))
	for i, k := range keys {
		pairs[i] = fmt.Sprintf("%s=%v", k, d.Values[k])
	}
	return strings.Join(pairs, " ")
}
