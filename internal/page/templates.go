package page

// pageTemplate is the Go html/template for the single page.
const pageTemplate = `<!DOCTYPE html>
<html lang="id" data-theme="{{.Theme}}">
<head>
  <meta charset="UTF-8">
  <meta name="viewport" content="width=device-width, initial-scale=1.0">
  <title>{{.Title}}</title>
  <link rel="icon" href="{{.Favicon}}">
  <style>{{.CSS}}</style>
</head>
<body class="layout-{{.Layout}}">
  <input type="checkbox" id="sidebar-toggle" class="sidebar-toggle" aria-hidden="true">
  <label for="sidebar-toggle" class="menu-toggle" aria-label="Toggle sidebar">
    <svg width="24" height="24" viewBox="0 0 24 24" fill="none" stroke="currentColor" stroke-width="2">
      <line x1="3" y1="6" x2="21" y2="6"/><line x1="3" y1="12" x2="21" y2="12"/><line x1="3" y1="18" x2="21" y2="18"/>
    </svg>
  </label>
  <nav class="sidebar" id="sidebar">
    {{if .Sidebar.Image}}<img src="{{.Sidebar.Image}}" alt="{{.Title}}" class="sidebar-image">{{end}}
    <div class="sidebar-heading">{{.Sidebar.Heading}}</div>
    <div class="sidebar-body">{{.Sidebar.Body}}</div>
    {{if .Sidebar.Footer}}<div class="sidebar-footer">{{.Sidebar.Footer}}</div>{{end}}
  </nav>
  <main class="content">
    <div class="content-inner">
      {{.Embed}}
    </div>
  </main>
</body>
</html>
`

// cssContent is the stylesheet for the page shell. The embed fragment
// carries its own media queries.
const cssContent = `
:root {
  --bg: #ffffff;
  --bg-sidebar: #f0f2f6;
  --text: #31333f;
  --text-muted: #808495;
  --border: #e6e9ef;
  --link: #0068c9;
  --sidebar-width: 336px;
  --centered-width: 46rem;
}

[data-theme="dark"] {
  --bg: #0e1117;
  --bg-sidebar: #262730;
  --text: #fafafa;
  --text-muted: #a3a8b8;
  --border: #3d3f4b;
  --link: #58a6ff;
}

* { box-sizing: border-box; }

html, body {
  margin: 0;
  padding: 0;
  background: var(--bg);
  color: var(--text);
  font-family: "Source Sans Pro", -apple-system, BlinkMacSystemFont, "Segoe UI", Roboto, sans-serif;
  line-height: 1.6;
}

a { color: var(--link); }

.sidebar {
  position: fixed;
  top: 0;
  left: 0;
  bottom: 0;
  width: var(--sidebar-width);
  overflow-y: auto;
  padding: 2rem 1.25rem;
  background: var(--bg-sidebar);
  border-right: 1px solid var(--border);
  z-index: 10;
  transition: transform 0.25s ease;
}

.sidebar-image {
  display: block;
  width: 100%;
  height: auto;
  border-radius: 8px;
  margin-bottom: 1rem;
}

.sidebar-heading p { margin: 0 0 0.5rem; }
.sidebar-body { font-size: 0.95em; }
.sidebar-body hr { border: none; border-top: 1px solid var(--border); margin: 1.25rem 0; }
.sidebar-body ul { padding-left: 1.25rem; }
.sidebar-body pre { overflow-x: auto; padding: 0.75rem; border-radius: 6px; }
.sidebar-footer { color: var(--text-muted); font-size: 0.85em; margin-top: 1.5rem; }

.content {
  margin-left: var(--sidebar-width);
  padding: 2rem 3rem;
}

.layout-centered .content-inner {
  max-width: var(--centered-width);
  margin: 0 auto;
}

.sidebar-toggle { display: none; }

.menu-toggle {
  display: none;
  position: fixed;
  top: 0.75rem;
  left: 0.75rem;
  z-index: 20;
  padding: 0.4rem;
  border-radius: 6px;
  cursor: pointer;
  color: var(--text);
  background: var(--bg-sidebar);
}

@media (max-width: 1024px) {
  .menu-toggle { display: block; }
  .sidebar { transform: translateX(-100%); }
  .sidebar-toggle:checked ~ .sidebar { transform: translateX(0); }
  .content { margin-left: 0; padding: 3.5rem 1rem 1rem; }
}
`
