package html

// deckTemplate is the standalone HTML replica: one printable page per
// slide, themed from the spec.
const deckTemplate = `<!doctype html>
<html lang="{{.Lang}}">
<head>
<meta charset="utf-8">
<meta name="viewport" content="width=device-width, initial-scale=1.0">
<title>{{.BrandName}} — {{.TitleText}}</title>
<style>
  * { margin: 0; padding: 0; box-sizing: border-box; }

  body {
    font-family: {{.FontFamily}}, -apple-system, BlinkMacSystemFont, 'Segoe UI', sans-serif;
    color: {{.PrimaryColor}};
    background: {{.BgColor}};
    line-height: 1.6;
  }

  .container {
    max-width: 1200px;
    margin: 0 auto;
    padding: 20px;
  }

  .slide {
    width: 100%;
    max-width: 960px;
    min-height: 540px;
    margin: 24px auto;
    padding: 40px;
    background: white;
    border: 1px solid #e0e0e0;
    border-radius: 8px;
    box-shadow: 0 2px 8px rgba(0,0,0,0.1);
    position: relative;
    page-break-after: always;
  }

  .logo {
    position: absolute;
    top: 16px;
    right: 40px;
    max-height: 40px;
    max-width: 150px;
  }

  .title {
    font-size: 28px;
    font-weight: 700;
    margin-bottom: 24px;
    color: {{.PrimaryColor}};
    padding-top: 8px;
  }

  .subtitle {
    font-size: 16px;
    color: {{.AccentColor}};
    margin-bottom: 16px;
    margin-top: -12px;
  }

  .content {
    display: flex;
    gap: 32px;
    margin-bottom: 40px;
  }

  .bullets {
    flex: 1;
    list-style-position: inside;
    padding-left: 0;
  }

  .bullets li {
    font-size: 18px;
    margin: 12px 0;
    padding-left: 8px;
    color: {{.PrimaryColor}};
  }

  .image-container {
    flex: 0 0 320px;
    text-align: center;
  }

  .image-container img {
    max-width: 100%;
    height: auto;
    border-radius: 4px;
  }

  .footer {
    font-size: 11px;
    margin-top: 32px;
    padding-top: 16px;
    border-top: 1px solid #e0e0e0;
    color: {{.PrimaryColor}};
    opacity: 0.8;
  }

  .cover-slide {
    display: flex;
    flex-direction: column;
    justify-content: center;
    align-items: flex-start;
  }

  .cover-slide .title {
    font-size: 42px;
    margin-bottom: 16px;
  }

  @media print {
    .slide {
      box-shadow: none;
      border: none;
      margin: 0;
      page-break-after: always;
    }
  }

  @media (max-width: 768px) {
    .slide {
      padding: 24px;
      min-height: auto;
    }

    .content {
      flex-direction: column;
    }

    .image-container {
      flex: 1;
    }

    .title {
      font-size: 24px;
    }

    .cover-slide .title {
      font-size: 32px;
    }

    .bullets li {
      font-size: 16px;
    }
  }
</style>
</head>
<body>
  <div class="container">

    <!-- Cover slide -->
    <div class="slide cover-slide">
      {{if .LogoPath}}<img src="{{.LogoPath}}" alt="{{.BrandName}} Logo" class="logo">{{end}}
      <div class="title">{{.BrandName}}</div>
      {{if .Subtitle}}<div class="subtitle">{{.Subtitle}}</div>{{end}}
      <div class="footer">{{.FooterText}}{{if .ShowNumbers}} | 1/{{.Total}}{{end}}</div>
    </div>

    <!-- Content slides -->
    {{range .Slides}}
    <div class="slide">
      {{if $.LogoPath}}<img src="{{$.LogoPath}}" alt="{{$.BrandName}} Logo" class="logo">{{end}}
      <div class="title">{{.Title}}</div>
      <div class="content">
        <ul class="bullets">
          {{range .Bullets}}<li>{{.}}</li>
          {{end}}
        </ul>
        {{if .HasImage}}
        <div class="image-container">
          <img src="{{.ImagePath}}" alt="{{.Alt}}">
        </div>
        {{end}}
      </div>
      <div class="footer">{{$.FooterText}}{{if $.ShowNumbers}} | {{.Number}}/{{$.Total}}{{end}}</div>
    </div>
    {{end}}

    <!-- Conclusion slide -->
    <div class="slide">
      {{if .LogoPath}}<img src="{{.LogoPath}}" alt="{{.BrandName}} Logo" class="logo">{{end}}
      <div class="title">{{.ConclusionTitle}}</div>
      <div class="content">
        <ul class="bullets">
          {{range .ConclusionPoints}}<li>{{.}}</li>
          {{end}}
        </ul>
      </div>
      <div class="footer">{{.FooterText}}{{if .ShowNumbers}} | {{.Total}}/{{.Total}}{{end}}</div>
    </div>

  </div>
</body>
</html>
`
