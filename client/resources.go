package client

// Per-resource helpers.  The read methods return empty slices when the
// API is unreachable or errors; the write methods propagate.
//
// Notes:
//   - RequestVehicleQuote is fail-open: when the API cannot take the
//     quote the request is acknowledged locally as queued so kiosk and
//     CLI flows never dead-end a customer.

import (
	"context"
	"fmt"
	"net/http"

	"github.com/pamirmotors/pamir/client/fixtures"
	"github.com/pamirmotors/pamir/internal/catalog"
	"github.com/pamirmotors/pamir/internal/content"
	"github.com/pamirmotors/pamir/internal/crm"
)

/*──────────────────────────────── CRM ───────────────────────────────────────*/

// ListLeads returns every lead, newest first.  Empty on failure, or the
// showcase rows when demo fixtures are enabled.
func (c *Client) ListLeads(ctx context.Context) []crm.Lead {
	out := []crm.Lead{}
	if !c.get(ctx, "/leads", &out) && c.demo {
		return fixtures.Leads()
	}
	return out
}

// CreateLead registers a new lead; the server stamps it New Inquiry.
func (c *Client) CreateLead(ctx context.Context, sub crm.LeadSubmission) (*crm.Lead, error) {
	var l crm.Lead
	if err := c.do(ctx, http.MethodPost, "/leads", sub, &l); err != nil {
		return nil, err
	}
	return &l, nil
}

// UpdateLeadStatus moves a lead along the pipeline.
func (c *Client) UpdateLeadStatus(ctx context.Context, id uint64, status crm.Status) (*crm.Lead, error) {
	patch := crm.LeadPatch{Status: &status}
	var l crm.Lead
	if err := c.do(ctx, http.MethodPut, fmt.Sprintf("/leads/%d", id), patch, &l); err != nil {
		return nil, err
	}
	return &l, nil
}

// ListPartners returns every partner contact.  Empty on failure, or the
// showcase rows when demo fixtures are enabled.
func (c *Client) ListPartners(ctx context.Context) []crm.Partner {
	out := []crm.Partner{}
	if !c.get(ctx, "/partners", &out) && c.demo {
		return fixtures.Partners()
	}
	return out
}

// CreatePartner registers a partner contact.
func (c *Client) CreatePartner(ctx context.Context, sub crm.PartnerSubmission) (*crm.Partner, error) {
	var p crm.Partner
	if err := c.do(ctx, http.MethodPost, "/partners", sub, &p); err != nil {
		return nil, err
	}
	return &p, nil
}

/*─────────────────────────────── content ────────────────────────────────────*/

// ListContent returns every content block, admin view.  Empty on failure.
func (c *Client) ListContent(ctx context.Context) []content.Block {
	out := []content.Block{}
	c.get(ctx, "/content", &out)
	return out
}

// PageContent returns the active blocks of one page, in display order.
// Empty on failure.
func (c *Client) PageContent(ctx context.Context, page string) []content.Block {
	out := []content.Block{}
	c.get(ctx, "/content/"+page, &out)
	return out
}

// SectionContent returns a single page section, or an error (404 when the
// section has no active block).
func (c *Client) SectionContent(ctx context.Context, page, section string) (*content.Block, error) {
	var b content.Block
	if err := c.do(ctx, http.MethodGet, "/content/"+page+"/"+section, nil, &b); err != nil {
		return nil, err
	}
	return &b, nil
}

// CreateContent adds a block.
func (c *Client) CreateContent(ctx context.Context, sub content.Submission) (*content.Block, error) {
	var b content.Block
	if err := c.do(ctx, http.MethodPost, "/content", sub, &b); err != nil {
		return nil, err
	}
	return &b, nil
}

// UpdateContent patches a block by id.
func (c *Client) UpdateContent(ctx context.Context, id uint64, patch content.Patch) (*content.Block, error) {
	var b content.Block
	if err := c.do(ctx, http.MethodPut, fmt.Sprintf("/content/%d", id), patch, &b); err != nil {
		return nil, err
	}
	return &b, nil
}

// DeleteContent removes a block by id.
func (c *Client) DeleteContent(ctx context.Context, id uint64) error {
	return c.do(ctx, http.MethodDelete, fmt.Sprintf("/content/%d", id), nil, nil)
}

/*─────────────────────────────── catalog ────────────────────────────────────*/

// ListVehicles returns the vehicle catalog, newest first.  Empty on failure.
func (c *Client) ListVehicles(ctx context.Context) []catalog.Vehicle {
	out := []catalog.Vehicle{}
	c.get(ctx, "/vehicles", &out)
	return out
}

// Vehicle fetches one vehicle by id.
func (c *Client) Vehicle(ctx context.Context, id uint64) (*catalog.Vehicle, error) {
	var v catalog.Vehicle
	if err := c.do(ctx, http.MethodGet, fmt.Sprintf("/vehicles/%d", id), nil, &v); err != nil {
		return nil, err
	}
	return &v, nil
}

// CreateVehicle adds a vehicle to the catalog.
func (c *Client) CreateVehicle(ctx context.Context, sub catalog.VehicleSubmission) (*catalog.Vehicle, error) {
	var v catalog.Vehicle
	if err := c.do(ctx, http.MethodPost, "/vehicles", sub, &v); err != nil {
		return nil, err
	}
	return &v, nil
}

// UpdateVehicle patches a vehicle by id.
func (c *Client) UpdateVehicle(ctx context.Context, id uint64, patch catalog.VehiclePatch) (*catalog.Vehicle, error) {
	var v catalog.Vehicle
	if err := c.do(ctx, http.MethodPut, fmt.Sprintf("/vehicles/%d", id), patch, &v); err != nil {
		return nil, err
	}
	return &v, nil
}

// DeleteVehicle removes a vehicle by id.
func (c *Client) DeleteVehicle(ctx context.Context, id uint64) error {
	return c.do(ctx, http.MethodDelete, fmt.Sprintf("/vehicles/%d", id), nil, nil)
}

// ListSpareParts returns the parts catalog, newest first.  Empty on failure.
func (c *Client) ListSpareParts(ctx context.Context) []catalog.SparePart {
	out := []catalog.SparePart{}
	c.get(ctx, "/spare-parts", &out)
	return out
}

// SparePart fetches one part by id.
func (c *Client) SparePart(ctx context.Context, id uint64) (*catalog.SparePart, error) {
	var p catalog.SparePart
	if err := c.do(ctx, http.MethodGet, fmt.Sprintf("/spare-parts/%d", id), nil, &p); err != nil {
		return nil, err
	}
	return &p, nil
}

// CreateSparePart adds a part to the catalog.
func (c *Client) CreateSparePart(ctx context.Context, sub catalog.SparePartSubmission) (*catalog.SparePart, error) {
	var p catalog.SparePart
	if err := c.do(ctx, http.MethodPost, "/spare-parts", sub, &p); err != nil {
		return nil, err
	}
	return &p, nil
}

// UpdateSparePart patches a part by id.
func (c *Client) UpdateSparePart(ctx context.Context, id uint64, patch catalog.SparePartPatch) (*catalog.SparePart, error) {
	var p catalog.SparePart
	if err := c.do(ctx, http.MethodPut, fmt.Sprintf("/spare-parts/%d", id), patch, &p); err != nil {
		return nil, err
	}
	return &p, nil
}

// DeleteSparePart removes a part by id.
func (c *Client) DeleteSparePart(ctx context.Context, id uint64) error {
	return c.do(ctx, http.MethodDelete, fmt.Sprintf("/spare-parts/%d", id), nil, nil)
}

/*────────────────────────────── inquiries ───────────────────────────────────*/

// Ack is the acknowledgement for a customer inquiry.
type Ack struct {
	Message string `json:"message"`
	// Queued marks an acknowledgement produced locally because the API
	// was unreachable; the payload must be retried out of band.
	Queued bool `json:"queued,omitempty"`
}

// SubmitPartsInquiry sends a parts inquiry.  Failures propagate so the
// caller can tell the customer to try again.
func (c *Client) SubmitPartsInquiry(ctx context.Context, payload map[string]any) (*Ack, error) {
	var a Ack
	if err := c.do(ctx, http.MethodPost, "/parts-inquiry", payload, &a); err != nil {
		return nil, err
	}
	return &a, nil
}

// RequestVehicleQuote sends a quote request.  Unlike parts inquiries this
// is fail-open: on error the request is acknowledged as queued.
func (c *Client) RequestVehicleQuote(ctx context.Context, payload map[string]any) *Ack {
	var a Ack
	if err := c.do(ctx, http.MethodPost, "/vehicle-quote", payload, &a); err != nil {
		c.log.Warnw("quote request queued locally", "err", err)
		return &Ack{Message: "Vehicle quote request received successfully", Queued: true}
	}
	return &a
}

/*──────────────────────────────── admin ─────────────────────────────────────*/

// Login checks admin credentials against the API.
func (c *Client) Login(ctx context.Context, username, password string) error {
	body := map[string]string{"username": username, "password": password}
	return c.do(ctx, http.MethodPost, "/admin/login", body, nil)
}
