package sitecontroller

import (
	"encoding/xml"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/kevin997/Olku-Olkanda/i18n"
)

type sitemapURL struct {
	Loc        string        `xml:"loc"`
	LastMod    string        `xml:"lastmod"`
	ChangeFreq string        `xml:"changefreq"`
	Priority   string        `xml:"priority"`
	Alternates []sitemapLink `xml:"xhtml:link"`
}

type sitemapLink struct {
	Rel      string `xml:"rel,attr"`
	HrefLang string `xml:"hreflang,attr"`
	Href     string `xml:"href,attr"`
}

type sitemapIndex struct {
	XMLName    xml.Name     `xml:"urlset"`
	Xmlns      string       `xml:"xmlns,attr"`
	XmlnsXHTML string       `xml:"xmlns:xhtml,attr"`
	URLs       []sitemapURL `xml:"url"`
}

// GET /sitemap.xml
// Sitemap lists the root entry plus one entry per supported locale, each
// annotated with alternate-language links.
func Sitemap(baseURL string) gin.HandlerFunc {
	return func(c *gin.Context) {
		lastMod := time.Now().Format("2006-01-02")

		alternates := make([]sitemapLink, 0, len(i18n.Locales))
		for _, l := range i18n.Locales {
			alternates = append(alternates, sitemapLink{
				Rel:      "alternate",
				HrefLang: string(l),
				Href:     baseURL + "/" + string(l),
			})
		}

		locs := []string{baseURL}
		for _, l := range i18n.Locales {
			locs = append(locs, baseURL+"/"+string(l))
		}

		index := sitemapIndex{
			Xmlns:      "http://www.sitemaps.org/schemas/sitemap/0.9",
			XmlnsXHTML: "http://www.w3.org/1999/xhtml",
		}
		for _, loc := range locs {
			index.URLs = append(index.URLs, sitemapURL{
				Loc:        loc,
				LastMod:    lastMod,
				ChangeFreq: "daily",
				Priority:   "1.0",
				Alternates: alternates,
			})
		}

		out, err := xml.MarshalIndent(index, "", "  ")
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to build sitemap"})
			return
		}
		c.Data(http.StatusOK, "application/xml; charset=utf-8", append([]byte(xml.Header), out...))
	}
}
