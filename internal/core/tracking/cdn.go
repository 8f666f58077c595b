package tracking

import (
	"log/slog"
	"net/url"
	"strings"
)

// CDNNormalizer rewrites time-limited storage URLs into stable public URLs
// under a configured permanent domain. Unparseable or foreign URLs pass
// through unchanged.
type CDNNormalizer struct {
	// Domain is the permanent public host, e.g. "cdn.example.com". Empty
	// means pass-through.
	Domain string
	Env    string
	Logger *slog.Logger
}

// Normalize rewrites an S3 storage URL (virtual-hosted or path style) to
// https://<domain>/<key>, dropping the signing query parameters. Anything it
// cannot recognise is returned unchanged.
func (n *CDNNormalizer) Normalize(raw string) string {
	if n.Domain == "" {
		if n.Env != "prod" && n.Logger != nil {
			n.Logger.Warn("no CDN domain configured, storage URL passed through unchanged",
				slog.String("url", raw))
		}
		return raw
	}
	u, err := url.Parse(raw)
	if err != nil || u.Host == "" {
		return raw
	}
	key, ok := objectKey(u)
	if !ok {
		return raw
	}
	return "https://" + n.Domain + "/" + key
}

// objectKey extracts the object key from an S3 hostname. Virtual-hosted
// style (bucket.s3.region.amazonaws.com/key) uses the whole path; path style
// (s3.region.amazonaws.com/bucket/key) drops the bucket segment.
func objectKey(u *url.URL) (string, bool) {
	host := strings.ToLower(u.Host)
	if !strings.HasSuffix(host, ".amazonaws.com") || !strings.Contains(host, "s3") {
		return "", false
	}
	path := strings.TrimPrefix(u.Path, "/")
	if path == "" {
		return "", false
	}
	if strings.HasPrefix(host, "s3.") || strings.HasPrefix(host, "s3-") {
		bucket, key, found := strings.Cut(path, "/")
		if !found || bucket == "" || key == "" {
			return "", false
		}
		return key, true
	}
	return path, true
}
