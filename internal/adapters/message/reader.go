// Package message turns RFC 5322 messages into scoring input.
package message

import (
	"bufio"
	"bytes"
	"encoding/base64"
	"fmt"
	"io"
	"mime"
	"mime/multipart"
	"mime/quotedprintable"
	"net/mail"
	"strings"

	"github.com/mikey/deliverability-scorer/internal/core"
	"golang.org/x/text/encoding/htmlindex"
)

var wordDecoder = &mime.WordDecoder{CharsetReader: charsetReader}

// Read parses a message and extracts its sender, recipients, subject and
// plain-text body.
func Read(r io.Reader) (*core.Email, error) {
	msg, err := mail.ReadMessage(bufio.NewReader(r))
	if err != nil {
		return nil, fmt.Errorf("failed to parse email: %w", err)
	}

	subject, err := wordDecoder.DecodeHeader(msg.Header.Get("Subject"))
	if err != nil {
		subject = msg.Header.Get("Subject")
	}

	body, err := extractText(msg.Header, msg.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read email body: %w", err)
	}

	var to []string
	for _, addr := range strings.Split(msg.Header.Get("To"), ",") {
		if addr = strings.TrimSpace(addr); addr != "" {
			to = append(to, addr)
		}
	}

	return &core.Email{
		From:    msg.Header.Get("From"),
		To:      to,
		Subject: subject,
		Body:    body,
	}, nil
}

// header is the subset of header access shared by mail and multipart parts
type header interface {
	Get(key string) string
}

// extractText returns the text content of an entity. For multipart
// entities the text/plain parts are concatenated; nested multiparts are
// walked.
func extractText(h header, body io.Reader) (string, error) {
	contentType := h.Get("Content-Type")
	mediaType, params, err := mime.ParseMediaType(contentType)
	if contentType == "" || err != nil {
		mediaType, params = "text/plain", map[string]string{}
	}

	if !strings.HasPrefix(mediaType, "multipart/") {
		return decodePart(body, h.Get("Content-Transfer-Encoding"), params["charset"])
	}

	boundary, ok := params["boundary"]
	if !ok {
		return decodePart(body, h.Get("Content-Transfer-Encoding"), "")
	}

	mr := multipart.NewReader(body, boundary)
	var text bytes.Buffer
	for {
		part, err := mr.NextPart()
		if err == io.EOF {
			break
		}
		if err != nil {
			if text.Len() > 0 {
				return text.String(), nil
			}
			return "", err
		}

		partType, _, err := mime.ParseMediaType(part.Header.Get("Content-Type"))
		if err != nil {
			partType = "text/plain"
		}
		if partType != "text/plain" && !strings.HasPrefix(partType, "multipart/") {
			continue
		}
		if part.FileName() != "" {
			continue
		}

		content, err := extractText(part.Header, part)
		if err != nil {
			continue
		}
		if text.Len() > 0 {
			text.WriteString("\n")
		}
		text.WriteString(content)
	}

	return text.String(), nil
}

// decodePart undoes the transfer encoding and converts the charset to UTF-8.
// multipart.Reader already removes quoted-printable encoding from parts, in
// which case the header is gone and nothing is done twice.
func decodePart(body io.Reader, transferEncoding, charset string) (string, error) {
	switch strings.ToLower(strings.TrimSpace(transferEncoding)) {
	case "quoted-printable":
		body = quotedprintable.NewReader(body)
	case "base64":
		body = base64.NewDecoder(base64.StdEncoding, body)
	}

	if charset != "" {
		decoded, err := charsetReader(charset, body)
		if err == nil {
			body = decoded
		}
	}

	data, err := io.ReadAll(body)
	if err != nil {
		return "", err
	}
	return string(data), nil
}

func charsetReader(charset string, input io.Reader) (io.Reader, error) {
	switch strings.ToLower(charset) {
	case "utf-8", "utf8", "us-ascii", "ascii":
		return input, nil
	}
	enc, err := htmlindex.Get(charset)
	if err != nil {
		return nil, fmt.Errorf("unsupported charset %q: %w", charset, err)
	}
	return enc.NewDecoder().Reader(input), nil
}
