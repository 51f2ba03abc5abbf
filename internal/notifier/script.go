package notifier

import (
	"encoding/base64"
	"fmt"
	"strings"
	"unicode"

	xunicode "golang.org/x/text/encoding/unicode"
)

const balloonScript = `Add-Type -AssemblyName System.Windows.Forms
$notification = New-Object System.Windows.Forms.NotifyIcon
$notification.Icon = [System.Drawing.SystemIcons]::Information
$notification.BalloonTipTitle = %s
$notification.BalloonTipText = %s
$notification.Visible = $true
$notification.ShowBalloonTip(%d)
Start-Sleep -Milliseconds %d
$notification.Dispose()
`

// PowerShell treats all of these as single quotes inside a literal.
var quoteEscaper = strings.NewReplacer(
	"'", "''",
	"‘", "‘‘",
	"’", "’’",
	"‚", "‚‚",
	"‛", "‛‛",
)

// BuildScript renders the PowerShell script that shows req as a balloon tip.
func BuildScript(req Request) string {
	text := sanitize(req.Message)
	if text == "" {
		// ShowBalloonTip rejects empty text.
		text = " "
	}
	shown := req.Duration.BalloonTimeout()
	return fmt.Sprintf(balloonScript,
		quote(sanitize(req.Title)),
		quote(text),
		shown.Milliseconds(),
		(shown + linger).Milliseconds(),
	)
}

// quote returns s as a single-quoted PowerShell string literal.
func quote(s string) string {
	return "'" + quoteEscaper.Replace(s) + "'"
}

// sanitize drops control characters that cannot travel through argv,
// keeping tab, CR and LF.
func sanitize(s string) string {
	return strings.Map(func(r rune) rune {
		switch {
		case r == '\t' || r == '\n' || r == '\r':
			return r
		case unicode.IsControl(r):
			return ' '
		default:
			return r
		}
	}, s)
}

// encodeCommand encodes a script for -EncodedCommand (base64 of UTF-16LE).
func encodeCommand(script string) (string, error) {
	enc := xunicode.UTF16(xunicode.LittleEndian, xunicode.IgnoreBOM).NewEncoder()
	b, err := enc.String(script)
	if err != nil {
		return "", fmt.Errorf("failed to encode script: %w", err)
	}
	return base64.StdEncoding.EncodeToString([]byte(b)), nil
}
