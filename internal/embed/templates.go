package embed

// frameTemplate defines the "styles" and "frame" fragments. The desktop
// container and the mobile fallback are both always present inside the
// component; the media queries decide which one is displayed.
const frameTemplate = `{{define "styles"}}<style>
  @media (max-width: {{.Layout.Breakpoint}}px) {
    .hide-on-mobile {
      display: none !important;
    }
    .show-on-mobile {
      display: block !important;
      padding: 24px 12px;
      background: #ffecec;
      color: #d10000;
      font-weight: bold;
      text-align: center;
      border-radius: 12px;
      font-size: 1.2em;
      margin-top: 24px;
      animation: fadeIn 0.6s ease-in-out;
      box-shadow: 0 4px 12px rgba(0,0,0,0.2);
    }
  }
  @media (min-width: {{.Layout.DesktopMinWidth}}px) {
    .show-on-mobile {
      display: none !important;
    }
  }
  @keyframes fadeIn {
    from { opacity: 0; transform: translateY(12px); }
    to { opacity: 1; transform: translateY(0); }
  }
</style>{{end}}

{{define "frame"}}{{template "styles" .}}
<div class="embed-component" style="{{.ComponentStyle}}">
<div class="hide-on-mobile embed-container" style="{{.ContainerStyle}}">
  <iframe src="{{.Src}}" title="{{.Title}}" style="{{.IframeStyle}}" allow="clipboard-read; clipboard-write; fullscreen"></iframe>
</div>
<div class="show-on-mobile" role="status">
  {{range $i, $line := .Message}}{{if $i}}<br>
  {{end}}{{$line}}{{end}}
</div>
</div>
{{end}}

{{define "document"}}<!DOCTYPE html>
<html lang="id">
<head>
  <meta charset="UTF-8">
  <meta name="viewport" content="width=device-width, initial-scale=1.0">
  <title>{{.Title}}</title>
  <style>html, body { margin: 0; padding: 0; }</style>
</head>
<body>
{{template "frame" .}}
</body>
</html>
{{end}}`
