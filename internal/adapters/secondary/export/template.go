package export

// deckHTMLTemplate is the standalone page wrapped around exported slides.
// Heading colors mirror the terminal theme slots.
const deckHTMLTemplate = `<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<title>{{.Title}}</title>
<style>
body { font-family: -apple-system, "Segoe UI", sans-serif; background: #1e1e2e; color: #cdd6f4; margin: 0; }
header { text-align: center; padding: 2rem 0 0.5rem; color: {{.TitleAccent}}; }
header .meta { color: {{.FooterAccent}}; font-size: 0.9rem; }
section.slide { min-height: 90vh; max-width: 48rem; margin: 0 auto; padding: 3rem 1rem; border-bottom: 1px solid #313244; }
section.slide h1 { color: {{.Heading1}}; }
section.slide h2 { color: {{.Heading2}}; }
section.slide h3 { color: {{.Heading3}}; }
section.slide h4 { color: {{.Heading4}}; }
section.slide .counter { color: {{.FooterAccent}}; font-size: 0.8rem; text-align: right; }
section.slide .notes { margin-top: 2rem; padding: 1rem; background: #313244; border-radius: 6px; font-size: 0.9rem; }
section.slide .notes::before { content: "Speaker notes"; display: block; font-weight: bold; margin-bottom: 0.5rem; color: {{.FooterAccent}}; }
</style>
</head>
<body>
<header>
<h1>{{.Title}}</h1>
{{if .Author}}<p class="meta">{{.Author}}{{if .Date}} — {{.Date}}{{end}}</p>{{end}}
</header>
{{range .Slides}}
<section class="slide">
{{safeHTML .HTML}}
{{if .Notes}}<div class="notes">{{.Notes}}</div>{{end}}
<p class="counter">{{.Number}}/{{$.SlideCount}} slides</p>
</section>
{{end}}
</body>
</html>
`
