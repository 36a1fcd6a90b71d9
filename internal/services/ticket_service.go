package services

import (
	"bytes"
	"encoding/json"
	"fmt"
	"sort"
	"time"

	"pasajes/internal/domain"
	"pasajes/internal/domain/models"
	"pasajes/internal/utils"

	"github.com/phpdave11/gofpdf"
	"github.com/skip2/go-qrcode"
)

// QRSize is the pixel size of the ticket's scannable code.
const QRSize = 256

type CompanyHeader struct {
	Name    string `json:"name"`
	Address string `json:"address"`
	TaxID   string `json:"tax_id"`
	Phone   string `json:"phone"`
}

// Receipt is everything printed on a ticket.
type Receipt struct {
	TicketID  string        `json:"ticket_id"`
	Company   CompanyHeader `json:"company"`
	TripID    string        `json:"trip_id"`
	Origin    string        `json:"origin"`
	Dest      string        `json:"destination"`
	Date      string        `json:"date"`
	Time      string        `json:"time"`
	Plate     string        `json:"plate"`
	Driver    string        `json:"driver"`
	Passenger string        `json:"passenger"`
	TaxID     string        `json:"tax_id"`
	Seats     []int         `json:"seats"`
	Quantity  int           `json:"quantity"`
	UnitPrice float64       `json:"unit_price"`
	Total     float64       `json:"total"`
	SaleDate  string        `json:"sale_date"`
	SaleTime  string        `json:"sale_time"`
	NewClient bool          `json:"new_client"`
}

func newReceipt(ticketID string, company models.CompanyProfile, trip models.Trip, seats []int, passenger, taxID string, unitPrice float64, saleDate, saleTime string, newClient bool) Receipt {
	return Receipt{
		TicketID: ticketID,
		Company: CompanyHeader{
			Name:    company.Name(),
			Address: company.Address(),
			TaxID:   company.TaxID(),
			Phone:   company.Phone(),
		},
		TripID:    trip.ID,
		Origin:    trip.Origin,
		Dest:      trip.Destination,
		Date:      trip.Date,
		Time:      trip.Time,
		Plate:     trip.Plate,
		Driver:    trip.Driver,
		Passenger: passenger,
		TaxID:     taxID,
		Seats:     seats,
		Quantity:  len(seats),
		UnitPrice: unitPrice,
		Total:     float64(len(seats)) * unitPrice,
		SaleDate:  saleDate,
		SaleTime:  saleTime,
		NewClient: newClient,
	}
}

type ticketPayload struct {
	Ticket    string  `json:"boleto"`
	Route     string  `json:"ruta"`
	Date      string  `json:"fecha"`
	Time      string  `json:"hora"`
	Seats     string  `json:"asientos"`
	Passenger string  `json:"pasajero"`
	Total     float64 `json:"total"`
}

// QRPayload is the JSON text encoded in the ticket's code.
func (r Receipt) QRPayload() string {
	raw, _ := json.Marshal(ticketPayload{
		Ticket:    r.TicketID,
		Route:     r.Origin + "-" + r.Dest,
		Date:      r.Date,
		Time:      r.Time,
		Seats:     utils.JoinSeats(r.Seats),
		Passenger: r.Passenger,
		Total:     r.Total,
	})
	return string(raw)
}

// TicketService rebuilds receipts from the sales sheet and renders them.
type TicketService struct {
	SeatCapacity int
	RequestID    string
}

// Lookup rebuilds the receipt of ticketID from snap. Cancelled rows are
// left out; a ticket with no live rows is not found.
func (s TicketService) Lookup(snap Snapshot, ticketID string) (Receipt, error) {
	var (
		seats     []int
		tripID    string
		taxID     string
		unitPrice float64
		saleDate  string
		saleTime  string
	)
	for _, sale := range snap.Sales {
		if sale.TicketID != ticketID || sale.Cancelled() {
			continue
		}
		seat, ok := utils.ParseSeat(sale.Seat)
		if !ok {
			continue
		}
		seats = append(seats, seat)
		tripID, taxID, unitPrice = sale.TripID, sale.ClientTaxID, sale.UnitPrice
		saleDate, saleTime = sale.SaleDate, sale.SaleTime
	}
	if len(seats) == 0 {
		return Receipt{}, domain.NotFoundError{Resource: "boleto " + ticketID}
	}
	sort.Ints(seats)

	// The trip may already be in the past, so join without the date filter.
	trip := models.Trip{ID: tripID, Origin: placeholder, Destination: placeholder, Plate: placeholder, Driver: placeholder}
	for _, entry := range snap.Schedule {
		if entry.ID == tripID {
			trip = joinTrip(entry, indexRoutes(snap.Routes), indexVehicles(snap.Vehicles), s.SeatCapacity)
			break
		}
	}

	passenger := unknownOccupantName
	if client, ok := findClient(snap.Clients, taxID); ok && client.Name != "" {
		passenger = client.Name
	}
	return newReceipt(ticketID, snap.Company, trip, seats, passenger, taxID, unitPrice, saleDate, saleTime, false), nil
}

// QRCode renders the receipt payload as a PNG.
func (s TicketService) QRCode(r Receipt) ([]byte, error) {
	return qrcode.Encode(r.QRPayload(), qrcode.Medium, QRSize)
}

// PDF renders a printable ticket with the code embedded.
func (s TicketService) PDF(r Receipt) ([]byte, string, error) {
	png, err := s.QRCode(r)
	if err != nil {
		return nil, "", fmt.Errorf("qr: %w", err)
	}
	utils.LogEvent(s.RequestID, "docs", "generate_ticket", "ticket="+r.TicketID)

	pdf := gofpdf.New("P", "mm", "A5", "")
	pdf.SetTitle("Boleto "+r.TicketID, true)
	tr := pdf.UnicodeTranslatorFromDescriptor("")
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 16)
	pdf.CellFormat(0, 8, tr(r.Company.Name), "", 1, "C", false, 0, "")
	pdf.SetFont("Helvetica", "", 10)
	if r.Company.Address != "" {
		pdf.CellFormat(0, 5, tr(r.Company.Address), "", 1, "C", false, 0, "")
	}
	if r.Company.TaxID != "" {
		pdf.CellFormat(0, 5, tr("NIT: "+r.Company.TaxID), "", 1, "C", false, 0, "")
	}
	pdf.Ln(4)

	pdf.SetFont("Helvetica", "B", 12)
	pdf.CellFormat(0, 7, "BOLETO "+r.TicketID, "", 1, "C", false, 0, "")
	pdf.Ln(2)

	pdf.SetFont("Helvetica", "", 11)
	lines := []string{
		fmt.Sprintf("Ruta      : %s -> %s", r.Origin, r.Dest),
		fmt.Sprintf("Fecha     : %s", utils.FormatDateShort(r.Date)),
		fmt.Sprintf("Hora      : %s", utils.OrDefault(r.Time, "-")),
		fmt.Sprintf("Vehículo  : %s", r.Plate),
		fmt.Sprintf("Conductor : %s", r.Driver),
		fmt.Sprintf("Pasajero  : %s", utils.OrDefault(r.Passenger, "-")),
		fmt.Sprintf("NIT/CI    : %s", utils.OrDefault(r.TaxID, "-")),
		fmt.Sprintf("Asientos  : %s", utils.JoinSeats(r.Seats)),
		fmt.Sprintf("Cantidad  : %d", r.Quantity),
		fmt.Sprintf("Precio    : %s", utils.FormatBs(r.UnitPrice)),
	}
	for _, l := range lines {
		pdf.CellFormat(0, 6, tr(l), "", 1, "L", false, 0, "")
	}
	pdf.SetFont("Helvetica", "B", 13)
	pdf.CellFormat(0, 8, tr("TOTAL     : "+utils.FormatBs(r.Total)), "", 1, "L", false, 0, "")

	opts := gofpdf.ImageOptions{ImageType: "PNG"}
	pdf.RegisterImageOptionsReader("qr", opts, bytes.NewReader(png))
	left, _, _, _ := pdf.GetMargins()
	pdf.ImageOptions("qr", left, pdf.GetY()+4, 35, 35, false, opts, 0, "")

	pdf.SetY(pdf.GetY() + 42)
	pdf.SetFont("Helvetica", "I", 9)
	pdf.MultiCell(0, 5, tr("Emitido "+time.Now().Format("02/01/2006 15:04")+". Presente este boleto al abordar."), "", "", false)

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, "", err
	}
	return buf.Bytes(), "BOLETO_" + r.TicketID + ".pdf", nil
}
