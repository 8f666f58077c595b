package tracking

import (
	"fmt"
	"html"
	"strings"

	"pubtag/internal/core/domain"
)

// Creative is the rendering info a tag needs, denormalised from the source
// asset. ClickURL here is the resolved click tracker target's final
// destination; the anchors in rendered tags always point at the click
// tracker, not at ClickURL directly.
type Creative struct {
	Name     string
	AltText  string
	Headline string
	Body     string
	CTA      string
	Width    int
	Height   int
}

// Comment builds the human-readable trafficking comment stored with each
// script and embedded at the top of its tag.
func Comment(advertiser, campaign, size string) string {
	return fmt.Sprintf("%s | %s | %s", advertiser, campaign, size)
}

// Render dispatches to the channel's renderer. The second return value is
// the simplified URL-only variant, non-empty only for image newsletters.
// Output is deterministic for identical input, and macro tokens are left
// literal; substitution happens at platform-transform time.
func Render(ch domain.Channel, cr Creative, u AttributionURLs, advertiser, campaign, size string) (tag, simpleTag string) {
	switch ch {
	case domain.ChannelNewsletterImage:
		return RenderNewsletterImage(cr, u, advertiser, campaign, size)
	case domain.ChannelNewsletterText:
		return RenderNewsletterText(cr, u, advertiser, campaign), ""
	default:
		return RenderDisplay(cr, u, advertiser, campaign, size), ""
	}
}

// RenderDisplay produces the self-contained website/streaming snippet: the
// creative wrapped in the click tracker, plus a hidden impression pixel.
func RenderDisplay(cr Creative, u AttributionURLs, advertiser, campaign, size string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "<!-- %s -->\n", Comment(advertiser, campaign, size))
	fmt.Fprintf(&b, "<a href=%q target=\"_blank\" rel=\"noopener\">\n", u.Click)
	fmt.Fprintf(&b, "  <img src=%q width=\"%d\" height=\"%d\" alt=%q style=\"border:0;display:block;\" />\n",
		withCacheBuster(u.Asset), cr.Width, cr.Height, altText(cr))
	b.WriteString("</a>\n")
	fmt.Fprintf(&b, "<img src=%q width=\"1\" height=\"1\" style=\"display:none;\" alt=\"\" />",
		withCacheBuster(u.Impression))
	return b.String()
}

// RenderNewsletterImage produces a table-based image ad for broad email
// client compatibility, plus the simplified variant for platforms with
// restricted HTML support.
func RenderNewsletterImage(cr Creative, u AttributionURLs, advertiser, campaign, size string) (tag, simpleTag string) {
	var b strings.Builder
	fmt.Fprintf(&b, "<!-- %s -->\n", Comment(advertiser, campaign, size))
	fmt.Fprintf(&b, "<table role=\"presentation\" border=\"0\" cellpadding=\"0\" cellspacing=\"0\" width=\"%d\">\n", cr.Width)
	b.WriteString("  <tr>\n    <td align=\"center\">\n")
	fmt.Fprintf(&b, "      <a href=%q target=\"_blank\">", u.Click)
	fmt.Fprintf(&b, "<img src=%q width=\"%d\" height=\"%d\" alt=%q style=\"display:block;border:0;\" /></a>\n",
		u.Asset, cr.Width, cr.Height, altText(cr))
	b.WriteString("    </td>\n  </tr>\n</table>\n")
	fmt.Fprintf(&b, "<img src=%q width=\"1\" height=\"1\" style=\"display:none;\" alt=\"\" />", u.Impression)

	simple := strings.Join([]string{
		"Image: " + u.Asset,
		"Click: " + u.Click,
		"Impression: " + u.Impression,
	}, "\n")
	return b.String(), simple
}

// RenderNewsletterText produces the headline/body/CTA text block with the
// click tracker as link target and the impression pixel appended.
func RenderNewsletterText(cr Creative, u AttributionURLs, advertiser, campaign string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "<!-- %s -->\n", Comment(advertiser, campaign, "text"))
	b.WriteString("<div>\n")
	fmt.Fprintf(&b, "  <a href=%q target=\"_blank\"><strong>%s</strong></a>\n", u.Click, html.EscapeString(cr.Headline))
	if cr.Body != "" {
		fmt.Fprintf(&b, "  <p>%s</p>\n", html.EscapeString(cr.Body))
	}
	if cr.CTA != "" {
		fmt.Fprintf(&b, "  <a href=%q target=\"_blank\">%s</a>\n", u.Click, html.EscapeString(cr.CTA))
	}
	fmt.Fprintf(&b, "  <img src=%q width=\"1\" height=\"1\" style=\"display:none;\" alt=\"\" />\n", u.Impression)
	b.WriteString("</div>")
	return b.String()
}

// withCacheBuster appends the literal cache-buster token to a URL's query.
func withCacheBuster(u string) string {
	if strings.Contains(u, "?") {
		return u + "&cb=" + CacheBusterMacro
	}
	return u + "?cb=" + CacheBusterMacro
}

func altText(cr Creative) string {
	if cr.AltText != "" {
		return cr.AltText
	}
	return cr.Name
}
