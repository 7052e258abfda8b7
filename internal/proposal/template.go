// internal/proposal/template.go
package proposal

import "html/template"

var proposalTemplate = template.Must(template.New("proposal").Parse(`<!DOCTYPE html>
<html lang="en">
<head>
  <meta charset="UTF-8">
  <meta name="viewport" content="width=device-width, initial-scale=1.0">
  <title>Technology Solutions Proposal - {{.CompanyName}}</title>
  <style>
    * { margin: 0; padding: 0; box-sizing: border-box; }
    body {
      font-family: -apple-system, BlinkMacSystemFont, 'Segoe UI', Roboto, sans-serif;
      line-height: 1.6;
      color: #1f2937;
      background: #ffffff;
      padding: 40px 20px;
    }
    .container { max-width: 900px; margin: 0 auto; background: white; }
    .header {
      background: linear-gradient(135deg, #2563eb 0%, #4f46e5 100%);
      color: white;
      padding: 40px;
      text-align: center;
      border-radius: 12px 12px 0 0;
    }
    .header h1 { font-size: 32px; margin-bottom: 10px; font-weight: 700; }
    .header p { font-size: 16px; opacity: 0.95; }
    .contact-banner {
      background: #1e40af;
      color: white;
      padding: 20px 40px;
      display: flex;
      justify-content: space-between;
      flex-wrap: wrap;
      gap: 15px;
    }
    .contact-item { display: flex; align-items: center; gap: 8px; font-size: 14px; }
    .contact-item strong { font-weight: 600; }
    .content { padding: 40px; }
    .section { margin-bottom: 40px; }
    .section-title {
      font-size: 24px;
      font-weight: 700;
      color: #1f2937;
      margin-bottom: 20px;
      padding-bottom: 10px;
      border-bottom: 3px solid #2563eb;
    }
    .intro {
      background: #f0f9ff;
      padding: 25px;
      border-radius: 8px;
      border-left: 4px solid #2563eb;
      margin-bottom: 30px;
    }
    .intro h3 { font-size: 18px; margin-bottom: 10px; color: #1e40af; }
    .recommendation {
      background: #f9fafb;
      border: 2px solid #e5e7eb;
      border-radius: 10px;
      padding: 25px;
      margin-bottom: 20px;
      page-break-inside: avoid;
    }
    .recommendation h3 { font-size: 20px; color: #1f2937; margin-bottom: 10px; font-weight: 600; }
    .rec-header {
      display: flex;
      justify-content: space-between;
      align-items: flex-start;
      margin-bottom: 15px;
      flex-wrap: wrap;
      gap: 10px;
    }
    .rec-meta { display: flex; gap: 12px; flex-wrap: wrap; }
    .badge {
      padding: 6px 12px;
      border-radius: 6px;
      font-size: 12px;
      font-weight: 600;
      text-transform: uppercase;
    }
    .badge-high { background: #fee2e2; color: #991b1b; }
    .badge-medium { background: #fef3c7; color: #92400e; }
    .badge-low { background: #d1fae5; color: #065f46; }
    .category {
      background: #dbeafe;
      color: #1e40af;
      padding: 6px 12px;
      border-radius: 6px;
      font-size: 12px;
      font-weight: 600;
    }
    .price { font-size: 22px; font-weight: 700; color: #059669; }
    .rec-description { margin-bottom: 15px; color: #4b5563; line-height: 1.7; }
    .rec-details {
      display: grid;
      grid-template-columns: repeat(auto-fit, minmax(200px, 1fr));
      gap: 15px;
      margin-top: 15px;
      padding-top: 15px;
      border-top: 1px solid #e5e7eb;
    }
    .detail-item strong {
      display: block;
      font-size: 12px;
      color: #6b7280;
      text-transform: uppercase;
      margin-bottom: 4px;
      letter-spacing: 0.5px;
    }
    .detail-item span { color: #1f2937; font-weight: 600; }
    .detail-item.wide { grid-column: 1 / -1; }
    .blueprint {
      background: linear-gradient(135deg, #f0f9ff 0%, #e0f2fe 100%);
      border: 2px solid #3b82f6;
      border-radius: 10px;
      padding: 30px;
      margin-top: 30px;
    }
    .blueprint h3 { font-size: 22px; color: #1e40af; margin-bottom: 20px; }
    .blueprint-note { margin-bottom: 20px; color: #1e40af; }
    .phase {
      background: white;
      padding: 20px;
      margin-bottom: 15px;
      border-radius: 8px;
      border-left: 4px solid #3b82f6;
    }
    .phase h4 { font-size: 16px; color: #1f2937; margin-bottom: 8px; }
    .phase p { color: #6b7280; margin-bottom: 10px; }
    .phase .meta { display: flex; justify-content: space-between; margin-top: 10px; font-size: 14px; }
    .deliverables { background: white; padding: 20px; border-radius: 8px; margin-top: 20px; }
    .deliverables h4 { font-size: 16px; margin-bottom: 10px; color: #1f2937; }
    .deliverables ul { font-size: 14px; color: #4b5563; line-height: 1.8; padding-left: 20px; }
    .blueprint-total { background: white; padding: 20px; border-radius: 8px; margin-top: 20px; text-align: center; }
    .blueprint-total .label { font-size: 14px; color: #6b7280; margin-bottom: 5px; }
    .blueprint-total .amount { font-size: 32px; font-weight: 700; color: #15803d; }
    .blueprint-total .timeline { font-size: 14px; color: #6b7280; margin-top: 5px; }
    .summary {
      background: #f0fdf4;
      border: 2px solid #22c55e;
      border-radius: 10px;
      padding: 30px;
      margin-top: 40px;
    }
    .summary h3 { font-size: 22px; color: #166534; margin-bottom: 20px; }
    .summary-grid {
      display: grid;
      grid-template-columns: repeat(auto-fit, minmax(200px, 1fr));
      gap: 20px;
      margin-bottom: 20px;
    }
    .summary-item { text-align: center; }
    .summary-item .label {
      font-size: 12px;
      color: #166534;
      text-transform: uppercase;
      font-weight: 600;
      margin-bottom: 5px;
    }
    .summary-item .value { font-size: 28px; font-weight: 700; color: #15803d; }
    .summary-item .value.small { font-size: 22px; }
    .cta-section {
      background: linear-gradient(135deg, #1e40af 0%, #3730a3 100%);
      color: white;
      padding: 40px;
      border-radius: 12px;
      text-align: center;
      margin-top: 40px;
    }
    .cta-section h3 { font-size: 26px; margin-bottom: 15px; }
    .cta-section p { font-size: 16px; margin-bottom: 25px; opacity: 0.95; }
    .cta-buttons { display: flex; justify-content: center; gap: 15px; flex-wrap: wrap; }
    .cta-button {
      background: white;
      color: #1e40af;
      padding: 15px 30px;
      border-radius: 8px;
      font-weight: 600;
      font-size: 16px;
      text-decoration: none;
      display: inline-block;
    }
    .footer {
      background: #f9fafb;
      padding: 30px 40px;
      text-align: center;
      border-radius: 0 0 12px 12px;
      margin-top: 40px;
      border-top: 2px solid #e5e7eb;
    }
    .footer p { font-size: 14px; color: #6b7280; margin-bottom: 10px; }
    .footer strong { color: #1f2937; }
    .footer .fine { margin-top: 10px; font-size: 12px; color: #9ca3af; }
    @media print {
      body { padding: 0; }
      .no-print { display: none; }
    }
  </style>
</head>
<body>
  <div class="container">
    <div class="header">
      <h1>Technology Solutions Proposal</h1>
      <p>Prepared for <strong>{{.CompanyName}}</strong></p>
      <p style="margin-top: 10px; font-size: 14px;">Generated on {{.GeneratedDate}}</p>
    </div>

    <div class="contact-banner">
      <div class="contact-item"><strong>Phone:</strong> {{.Contact.Phone}}</div>
      <div class="contact-item"><strong>Email:</strong> {{.Contact.Email}}</div>
      <div class="contact-item"><strong>Website:</strong> {{.Contact.Website}}</div>
    </div>

    <div class="content">
      <div class="intro">
        <h3>{{.IntroHeading}}</h3>
        <p>{{.IntroText}}</p>
      </div>

      <div class="section">
        <h2 class="section-title">Recommended Solutions ({{.TotalCount}})</h2>
{{range .Recommendations}}
        <div class="recommendation">
          <div class="rec-header">
            <div>
              <h3>{{.Index}}. {{.Title}}</h3>
              <div class="rec-meta">
                <span class="category">{{.Category}}</span>
                <span class="badge {{.PriorityClass}}">{{.Priority}} Priority</span>
              </div>
            </div>
            <div class="price">{{.EstimatedCost}}</div>
          </div>

          <p class="rec-description">{{.Description}}</p>

          <div class="rec-details">
            <div class="detail-item">
              <strong>Business Impact</strong>
              <span>{{.BusinessImpact}}</span>
            </div>
            <div class="detail-item">
              <strong>Expected ROI</strong>
              <span>{{.ExpectedROI}}</span>
            </div>
            <div class="detail-item">
              <strong>Timeline</strong>
              <span>{{.EstimatedTimeline}}</span>
            </div>
            <div class="detail-item">
              <strong>Why Needed</strong>
              <span>{{.WhyNeeded}}</span>
            </div>
            <div class="detail-item wide">
              <strong>How It Helps</strong>
              <span>{{.HowItHelps}}</span>
            </div>
          </div>
        </div>
{{end}}
      </div>
{{if .Blueprint}}
      <div class="section">
        <h2 class="section-title">Implementation Blueprint</h2>
        <div class="blueprint">
          <h3>Project Implementation Plan</h3>
          <p class="blueprint-note">Phased approach to delivering your technology solutions</p>
{{range .Phases}}
          <div class="phase">
            <h4>Phase {{.Index}}: {{.Name}}</h4>
            <p>{{.Description}}</p>
            <div class="meta"><span><strong>Duration:</strong> {{.Duration}}</span></div>
          </div>
{{end}}
          <div class="deliverables">
            <h4>Project Deliverables</h4>
            <ul>
{{range .Blueprint.Deliverables}}              <li>{{.}}</li>
{{end}}            </ul>
          </div>

          <div class="blueprint-total">
            <div class="label">Total Project Cost</div>
            <div class="amount">{{.Blueprint.CostBracket}}</div>
            <div class="timeline">Timeline: {{.Blueprint.Timeline}}</div>
          </div>
        </div>
      </div>
{{end}}
      <div class="summary">
        <h3>Proposal Summary</h3>
        <div class="summary-grid">
          <div class="summary-item">
            <div class="label">Total Solutions</div>
            <div class="value">{{.TotalCount}}</div>
          </div>
          <div class="summary-item">
            <div class="label">High Priority</div>
            <div class="value">{{.HighCount}}</div>
          </div>
          <div class="summary-item">
            <div class="label">Estimated Investment</div>
            <div class="value small">&#8377;{{.TotalInvestment}}</div>
          </div>
          <div class="summary-item">
            <div class="label">Avg. Timeline</div>
            <div class="value small">{{.AvgTimeline}}</div>
          </div>
        </div>
      </div>

      <div class="cta-section">
        <h3>Ready to Transform Your Business?</h3>
        <p>Let's discuss how these solutions can be tailored to your specific needs and budget.</p>
        <div class="cta-buttons">
          <a href="{{.TelLink}}" class="cta-button">Call: {{.Contact.Phone}}</a>
          <a href="{{.MailtoLink}}" class="cta-button">Email Us</a>
          <a href="{{.WhatsAppHref}}" class="cta-button">WhatsApp Chat</a>
        </div>
        <p style="margin-top: 20px; font-size: 14px;">Visit us at <strong>{{.Contact.Website}}</strong></p>
      </div>
    </div>

    <div class="footer">
      <p><strong>{{.Contact.Company}}</strong></p>
      <p>Enterprise Technology Solutions for Growing Businesses Worldwide</p>
      <p style="margin-top: 15px;">{{.Contact.Phone}} | {{.Contact.Email}} | {{.Contact.Website}}</p>
      <p class="fine">&copy; {{.Year}} {{.Contact.Company}}. All rights reserved.</p>
    </div>
  </div>
</body>
</html>`))
