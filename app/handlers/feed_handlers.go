package handlers

import (
	"net/http"

	"github.com/AliAbdullahpgr/ahmad-raffay-ecommerce/app/services"
	"github.com/AliAbdullahpgr/ahmad-raffay-ecommerce/app/utils/renderer"
	"github.com/unrolled/render"
)

type FeedHandler struct {
	feed   *services.FeedService
	render *render.Render
}

func NewFeedHandler(feed *services.FeedService, r *render.Render) *FeedHandler {
	return &FeedHandler{feed: feed, render: r}
}

func (h *FeedHandler) MerchantFeed(w http.ResponseWriter, r *http.Request) {
	xml, err := h.feed.MerchantFeedXML(r.Context())
	if err != nil {
		renderer.Error(h.render, w, r, err)
		return
	}
	w.Header().Set("Content-Type", "application/xml; charset=utf-8")
	w.Header().Set("Cache-Control", "public, s-maxage=3600, stale-while-revalidate=86400")
	_, _ = w.Write([]byte(xml))
}

func (h *FeedHandler) Sitemap(w http.ResponseWriter, r *http.Request) {
	xml, err := h.feed.SitemapXML(r.Context())
	if err != nil {
		renderer.Error(h.render, w, r, err)
		return
	}
	w.Header().Set("Content-Type", "application/xml; charset=utf-8")
	_, _ = w.Write([]byte(xml))
}

func (h *FeedHandler) Robots(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	_, _ = w.Write([]byte(h.feed.RobotsTxt()))
}
