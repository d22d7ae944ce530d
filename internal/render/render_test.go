package render

import (
	"strings"
	"testing"

	"portfoliochat/internal/knowledge"
)

func TestRenderBoldAndLineBreaks(t *testing.T) {
	msg := Render("**Bold** and \n bullet • item")

	if !strings.Contains(msg.HTML, "<strong>Bold</strong>") {
		t.Errorf("bold not rendered: %q", msg.HTML)
	}
	if !strings.Contains(msg.HTML, "<br>") {
		t.Errorf("newline not rendered as break: %q", msg.HTML)
	}
	// The bullet glyph stays literal text.
	if !strings.Contains(msg.HTML, "bullet • item") {
		t.Errorf("bullet text altered: %q", msg.HTML)
	}
}

func TestRenderEmphasis(t *testing.T) {
	msg := Render("this is *important* here")
	if !strings.Contains(msg.HTML, "<em>important</em>") {
		t.Errorf("light emphasis not rendered: %q", msg.HTML)
	}
}

func TestRenderMarkdownLink(t *testing.T) {
	msg := Render("see [his portfolio](https://colelenting.dev/work) for more")

	want := `<a href="https://colelenting.dev/work" target="_blank" rel="noopener noreferrer">his portfolio</a>`
	if !strings.Contains(msg.HTML, want) {
		t.Errorf("markdown link not rendered:\n got %q\nwant %q", msg.HTML, want)
	}
}

func TestRenderBareURL(t *testing.T) {
	msg := Render("check https://github.com/colelenting today")

	if !strings.Contains(msg.HTML, `<a href="https://github.com/colelenting" target="_blank" rel="noopener noreferrer">https://github.com/colelenting</a>`) {
		t.Errorf("bare URL not autolinked: %q", msg.HTML)
	}
}

func TestRenderBareURLDoesNotRelinkAnchors(t *testing.T) {
	msg := Render("see [site](https://example.com/page)")

	if strings.Count(msg.HTML, "<a ") != 1 {
		t.Errorf("anchor corrupted by autolinking: %q", msg.HTML)
	}
}

func TestRenderURLLabelNotRelinked(t *testing.T) {
	msg := Render("visit [https://colelenting.dev](https://colelenting.dev) soon")

	if strings.Count(msg.HTML, "<a ") != 1 {
		t.Errorf("URL label re-linked into nested anchors: %q", msg.HTML)
	}
	if !strings.Contains(msg.HTML, `>https://colelenting.dev</a>`) {
		t.Errorf("label lost: %q", msg.HTML)
	}
}

func TestRenderCVDownload(t *testing.T) {
	msg := Render("grab it at /static/Cole_Lenting_CV.pdf today")

	if !strings.Contains(msg.HTML, `<a href="/static/Cole_Lenting_CV.pdf" class="cv-download" download>`) {
		t.Errorf("CV affordance not rendered: %q", msg.HTML)
	}
	if !strings.Contains(msg.HTML, "Download CV (PDF)") {
		t.Errorf("CV label missing: %q", msg.HTML)
	}
}

func TestRenderEmail(t *testing.T) {
	msg := Render("write to colelenting7@gmail.com anytime")

	if !strings.Contains(msg.HTML, `<a href="mailto:colelenting7@gmail.com" target="_blank" rel="noopener noreferrer">colelenting7@gmail.com</a>`) {
		t.Errorf("email not autolinked: %q", msg.HTML)
	}
}

func TestRenderPhone(t *testing.T) {
	msg := Render("call 081 348 9356 during office hours")

	if !strings.Contains(msg.HTML, `<a href="tel:+27813489356">081 348 9356</a>`) {
		t.Errorf("phone not autolinked: %q", msg.HTML)
	}
}

func TestRenderEscapesHTML(t *testing.T) {
	msg := Render(`<script>alert("x")</script>`)

	if strings.Contains(msg.HTML, "<script>") {
		t.Fatalf("raw HTML not escaped: %q", msg.HTML)
	}
	if !strings.Contains(msg.HTML, "&lt;script&gt;") {
		t.Errorf("expected escaped script tag: %q", msg.HTML)
	}
}

func TestRenderContactTopicEndToEnd(t *testing.T) {
	kb := knowledge.New()
	contact, _ := kb.Lookup(knowledge.TopicContact)
	msg := Render(contact.Text)

	if !strings.Contains(msg.HTML, `href="mailto:colelenting7@gmail.com"`) {
		t.Errorf("contact email not linked: %q", msg.HTML)
	}
	if !strings.Contains(msg.HTML, `href="tel:+27813489356"`) {
		t.Errorf("contact phone not linked: %q", msg.HTML)
	}
	if !strings.Contains(msg.HTML, "• Email:") {
		t.Errorf("bullet structure lost: %q", msg.HTML)
	}
}

func TestRenderSuggestionsTrailer(t *testing.T) {
	text := "Cole knows React and PHP.\n\nQuick actions:\n- Education background\n- Contact information\n"
	msg := Render(text)

	if strings.Contains(strings.ToLower(msg.HTML), "quick actions") {
		t.Errorf("trailer leaked into the bubble: %q", msg.HTML)
	}
	if len(msg.Suggestions) != 2 {
		t.Fatalf("suggestions = %d, want 2: %v", len(msg.Suggestions), msg.Suggestions)
	}
	if msg.Suggestions[0].Label != "Education background" {
		t.Errorf("first suggestion = %q", msg.Suggestions[0].Label)
	}
	if msg.Suggestions[1].Query != "Contact information" {
		t.Errorf("second suggestion query = %q", msg.Suggestions[1].Query)
	}
}

func TestRenderTopicExposesFollowUps(t *testing.T) {
	kb := knowledge.New()
	welcome, _ := kb.Lookup(knowledge.TopicWelcome)
	msg := RenderTopic(welcome)

	if len(msg.Suggestions) != len(welcome.FollowUps) {
		t.Fatalf("suggestions = %d, want %d", len(msg.Suggestions), len(welcome.FollowUps))
	}
	if msg.Suggestions[0].Label != "Tell me about Cole" {
		t.Errorf("first follow-up = %q", msg.Suggestions[0].Label)
	}
}

func TestRenderIsPure(t *testing.T) {
	const input = "**Bold** with https://example.com and colelenting7@gmail.com"
	first := Render(input)
	for i := 0; i < 10; i++ {
		if got := Render(input); got.HTML != first.HTML {
			t.Fatalf("Render not deterministic:\n%q\n%q", first.HTML, got.HTML)
		}
	}
}
