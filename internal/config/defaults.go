package config

import (
	"slices"

	"github.com/mrbrightsides/mermaind/internal/embed"
)

// DefaultEmbedURL is the hosted diagram generator shown in the main area.
const DefaultEmbedURL = "https://mermaind.elpeef.com/"

// DefaultSidebarImage is the branding image at the top of the sidebar.
const DefaultSidebarImage = "https://i.imgur.com/pwYe3ox.png"

// DefaultSidebarMarkdown is the "About" text shown below the sidebar heading.
const DefaultSidebarMarkdown = `**Mermaind** adalah tool pintar yang membantu akademisi, peneliti, dan praktisi membuat flow diagram hanya dengan menulis deskripsi singkat. Tanpa perlu ribet menggambar manual, Mermaind langsung mengubah prompt menjadi kode Mermaid/Graphviz, lalu merendernya menjadi diagram vector (SVG/PNG) yang tajam dan siap dipakai di paper, laporan, maupun presentasi.

Mermaind dirancang untuk mempercepat proses dokumentasi dan publikasi, memastikan diagram yang dihasilkan tidak hanya informatif tapi juga sesuai standar visual akademik (misalnya jurnal Q1 yang mengutamakan grafik vector).

---
#### 🔮 Vision Statement

Mermaind hadir dengan visi untuk menjadikan visualisasi ilmiah lebih cepat, sederhana, dan universal.
Dengan mengandalkan natural language prompt, setiap orang—tanpa harus menguasai sintaks diagram—bisa langsung mendapatkan hasil yang rapi, tajam, dan mudah dipoles.

Kami percaya, ide besar harus divisualisasikan dengan baik agar mudah dipahami, diadopsi, dan dikembangkan. Dengan Mermaind, akademisi dapat lebih fokus pada mind, sementara alurnya biar kami yang gambar.

---
### 🧩 Apps Showcase
Lihat disini untuk semua tools yang kami kembangkan:
[ELPEEF](https://showcase.elpeef.com/)

---
#### 🙌 Dukungan & kontributor

- ⭐ **Star / Fork**: [GitHub repo](https://github.com/mrbrightsides/mermaind)
- Built with 💙 by [Khudri](https://s.id/khudri)
- Dukung pengembangan proyek ini melalui:
  [💖 GitHub Sponsors](https://github.com/sponsors/mrbrightsides) •
  [☕ Ko-fi](https://ko-fi.com/khudri) •
  [💵 PayPal](https://www.paypal.com/paypalme/akhmadkhudri) •
  [🍵 Trakteer](https://trakteer.id/akhmad_khudri)
`

// DefaultConfig returns a Config matching the production deployment.
func DefaultConfig() *Config {
	return &Config{
		Page: PageConfig{
			Title:  "Mermaind",
			Icon:   "🧜‍♀️",
			Layout: LayoutWide,
			Theme:  ThemeDark,
		},
		Sidebar: SidebarConfig{
			Image:    DefaultSidebarImage,
			Heading:  "📘 **About**",
			Markdown: DefaultSidebarMarkdown,
			Footer:   "Versi UI: v1.0",
		},
		Embed: EmbedConfig{
			URL:           DefaultEmbedURL,
			HideTopPx:     0,
			HideBottomPx:  -105,
			Height:        800,
			Breakpoint:    embed.DefaultBreakpoint,
			MobileMessage: slices.Clone(embed.DefaultMobileMessage),
		},
		Server: ServerConfig{
			Port: 8080,
		},
	}
}
