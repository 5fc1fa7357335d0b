package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/vocesapp/voces-backend/internal/config"
)

type LegalHandler struct {
	cfg *config.Config
}

func NewLegalHandler(cfg *config.Config) *LegalHandler {
	return &LegalHandler{cfg: cfg}
}

func (h *LegalHandler) PrivacyPolicy(c *fiber.Ctx) error {
	return c.Type("html").SendString(`<!DOCTYPE html>
<html><head><title>Privacy Policy - VocesApp</title>
<meta name="viewport" content="width=device-width, initial-scale=1">
<style>body{font-family:-apple-system,BlinkMacSystemFont,sans-serif;max-width:800px;margin:0 auto;padding:20px;color:#333}h1{color:#1a1a1a}h2{color:#444;margin-top:30px}</style>
</head><body>
<h1>Privacy Policy</h1>
<p>Last updated: February 2026</p>
<h2>Information We Collect</h2>
<p>We collect your email address, your practice details, and the task, supply and assistant records you create in order to provide our services.</p>
<h2>How We Use Your Information</h2>
<p>Your data is used solely to operate VocesApp, authenticate your account, and improve our services. Emergency conversation transcripts are stored so your practice can review them.</p>
<h2>Data Storage</h2>
<p>Your data is stored securely on encrypted servers. We do not sell your personal information to third parties.</p>
<h2>Account Deletion</h2>
<p>You can delete your account and all associated data at any time from the app settings.</p>
<h2>Contact</h2>
<p>For questions about this policy, contact us at ` + h.cfg.SupportEmail + `</p>
</body></html>`)
}

func (h *LegalHandler) TermsOfService(c *fiber.Ctx) error {
	return c.Type("html").SendString(`<!DOCTYPE html>
<html><head><title>Terms of Service - VocesApp</title>
<meta name="viewport" content="width=device-width, initial-scale=1">
<style>body{font-family:-apple-system,BlinkMacSystemFont,sans-serif;max-width:800px;margin:0 auto;padding:20px;color:#333}h1{color:#1a1a1a}h2{color:#444;margin-top:30px}</style>
</head><body>
<h1>Terms of Service</h1>
<p>Last updated: February 2026</p>
<h2>Acceptance</h2>
<p>By using VocesApp, you agree to these terms.</p>
<h2>Medical Disclaimer</h2>
<p>VocesApp is a practice-management tool. It does not provide medical advice, and the emergency assistant does not replace professional emergency services.</p>
<h2>User Conduct</h2>
<p>You agree not to submit offensive, illegal, or harmful content. We reserve the right to remove content that violates our guidelines.</p>
<h2>Termination</h2>
<p>We may suspend or terminate accounts that violate these terms.</p>
<h2>Contact</h2>
<p>For questions, contact us at ` + h.cfg.SupportEmail + `</p>
</body></html>`)
}
