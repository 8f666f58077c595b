package domain

// Channel is the closed set of tracking channel kinds a script can be
// generated for. Free-text placement labels are mapped onto this set by the
// classifier; everything unrecognised lands on ChannelWebsite.
type Channel string

const (
	ChannelWebsite         Channel = "website"
	ChannelNewsletterImage Channel = "newsletter_image"
	ChannelNewsletterText  Channel = "newsletter_text"
	ChannelStreaming       Channel = "streaming"
)

// IsNewsletter reports whether the channel is delivered over email. Newsletter
// channels carry a recipient-id macro in their attribution URLs.
func (c Channel) IsNewsletter() bool {
	return c == ChannelNewsletterImage || c == ChannelNewsletterText
}

func (c Channel) String() string { return string(c) }
