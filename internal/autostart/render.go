package autostart

import (
	"encoding/xml"
	"strings"

	"github.com/iamkroot/trakt-scrobbler/internal/platform"
)

const plistTemplate = `<?xml version="1.0" encoding="UTF-8"?>
<!DOCTYPE plist PUBLIC "-//Apple//DTD PLIST 1.0//EN" "http://www.apple.com/DTDs/PropertyList-1.0.dtd">
<plist version="1.0">
<dict>
    <key>Label</key>
    <string>{label}</string>
    <key>ProgramArguments</key>
    <array>
{programArguments}
    </array>
    <key>RunAtLoad</key>
    {runAtLoad}
    <key>LaunchOnlyOnce</key>
    {launchOnlyOnce}
    <key>KeepAlive</key>
    {keepAlive}
</dict>
</plist>
`

const unitTemplate = `[Unit]
Description={description}

[Service]
ExecStart={execStart}

[Install]
WantedBy={wantedBy}
`

// Batch files are read by cmd.exe, so lines end in CRLF.
const scriptTemplate = "@echo off\r\nstart \"{name}\" /B {command}\r\n"

// Render returns the autostart artifact for p, trimmed of surrounding
// whitespace. It performs no I/O.
func Render(p platform.Profile, d Descriptor) string {
	var out string
	switch p {
	case platform.LaunchAgent:
		out = renderPlist(d)
	case platform.SystemdUser:
		out = strings.NewReplacer(
			"{description}", d.Description,
			"{execStart}", commandLine(d.Program),
			"{wantedBy}", d.WantedBy,
		).Replace(unitTemplate)
	case platform.WindowsStartup:
		out = strings.NewReplacer(
			"{name}", d.Name,
			"{command}", commandLine(d.Program),
		).Replace(scriptTemplate)
	}
	return strings.TrimSpace(out)
}

func renderPlist(d Descriptor) string {
	args := make([]string, 0, len(d.Program))
	for _, arg := range d.Program {
		args = append(args, "        <string>"+xmlEscape(arg)+"</string>")
	}
	return strings.NewReplacer(
		"{label}", xmlEscape(d.Label),
		"{programArguments}", strings.Join(args, "\n"),
		"{runAtLoad}", plistBool(d.RunAtLoad),
		"{launchOnlyOnce}", plistBool(d.LaunchOnlyOnce),
		"{keepAlive}", plistBool(d.KeepAlive),
	).Replace(plistTemplate)
}

func plistBool(v bool) string {
	if v {
		return "<true/>"
	}
	return "<false/>"
}

func xmlEscape(s string) string {
	var b strings.Builder
	// strings.Builder never fails a write.
	_ = xml.EscapeText(&b, []byte(s))
	return b.String()
}

// commandLine joins argv into the single line used by ExecStart and cmd.exe.
// Arguments containing whitespace are double-quoted.
func commandLine(argv []string) string {
	parts := make([]string, 0, len(argv))
	for _, arg := range argv {
		if strings.ContainsAny(arg, " \t") {
			arg = `"` + strings.ReplaceAll(arg, `"`, `\"`) + `"`
		}
		parts = append(parts, arg)
	}
	return strings.Join(parts, " ")
}
