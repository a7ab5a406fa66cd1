// Package render maps domain data to HTML fragments. Every function here is
// pure: data in, markup out, no fetching and no state. Controllers decide
// what to load; this package only decides what it looks like.
package render

import (
	"bytes"
	"fmt"
	"html/template"
	"time"

	"github.com/agrigo/storefront/internal/core/domain"
	"github.com/agrigo/storefront/internal/core/ports"
)

var fragFuncs = template.FuncMap{
	"currency": Currency,
	"date":     Date,
	"badge":    StatusBadgeClass,
	"orNA":     orNA,
}

// Currency formats an amount the way the marketplace displays prices.
func Currency(amount float64) string {
	return fmt.Sprintf("₹%.2f", amount)
}

// Date renders a timestamp for display; the zero time becomes "N/A" instead
// of a bogus epoch date.
func Date(t time.Time) string {
	if t.IsZero() {
		return "N/A"
	}
	return t.Format("Jan 2, 2006")
}

// StatusBadgeClass picks the Bootstrap badge variant for an order status.
func StatusBadgeClass(s domain.OrderStatus) string {
	switch s {
	case domain.OrderPending:
		return "warning"
	case domain.OrderCompleted:
		return "success"
	case domain.OrderCancelled:
		return "danger"
	default:
		return "secondary"
	}
}

// orNA substitutes the placeholder for missing optional fields, so an
// orphaned reference renders "N/A" rather than an empty cell.
func orNA(s string) string {
	if s == "" {
		return "N/A"
	}
	return s
}

var productRowsTmpl = template.Must(template.New("productRows").Funcs(fragFuncs).Parse(`
{{- if not . -}}
<tr><td colspan="6" class="text-center">No products found</td></tr>
{{- else -}}
{{- range . }}
<tr>
  <td>{{ orNA .Name }}</td>
  <td>{{ orNA .Category }}</td>
  <td>{{ currency .Price }}</td>
  <td>{{ .Quantity }} {{ .Unit }}</td>
  <td>{{ if .IsAvailable }}Available{{ else }}Not Available{{ end }}</td>
  <td>
    <a class="btn btn-sm btn-primary" href="/dashboard/products/{{ .ID }}/edit">Edit</a>
    <form class="d-inline" method="post" action="/dashboard/products/{{ .ID }}/delete">
      <button type="submit" class="btn btn-sm btn-danger">Delete</button>
    </form>
  </td>
</tr>
{{- end }}
{{- end -}}`))

// ProductRows renders the farmer dashboard's product table body.
func ProductRows(products []domain.Product) template.HTML {
	return execute(productRowsTmpl, products)
}

type productCardsData struct {
	Products   []domain.Product
	ViewerRole string
}

var productCardsTmpl = template.Must(template.New("productCards").Funcs(fragFuncs).Parse(`
{{- if not .Products -}}
<div class="col-12 text-center text-muted">No products found</div>
{{- else -}}
{{- $role := .ViewerRole }}
{{- range .Products }}
<div class="col-md-4 mb-4">
  <div class="card h-100">
    <div class="card-body">
      <h5 class="card-title">{{ orNA .Name }}</h5>
      <p class="card-text">{{ orNA .Description }}</p>
      <p class="card-text"><strong>Price:</strong> {{ currency .Price }}</p>
      <p class="card-text"><small class="text-muted">Available: {{ .Quantity }} {{ .Unit }}</small></p>
      {{- if eq $role "consumer" }}
      <form method="post" action="/cart">
        <input type="hidden" name="product_id" value="{{ .ID }}">
        <input type="hidden" name="quantity" value="1">
        <button type="submit" class="btn btn-primary">Add to Cart</button>
      </form>
      {{- end }}
    </div>
  </div>
</div>
{{- end }}
{{- end -}}`))

// ProductCards renders the consumer catalog. The add-to-cart action only
// appears for the consumer role.
func ProductCards(products []domain.Product, viewerRole string) template.HTML {
	return execute(productCardsTmpl, productCardsData{Products: products, ViewerRole: viewerRole})
}

var orderCardsTmpl = template.Must(template.New("orderCards").Funcs(fragFuncs).Parse(`
{{- if not . -}}
<div class="card mb-3"><div class="card-body text-center text-muted">No orders found</div></div>
{{- else -}}
{{- range . }}
<div class="card mb-3">
  <div class="card-header">
    Order #{{ orNA .ID }}
    <span class="badge bg-{{ badge .Status }} float-end">{{ .Status }}</span>
  </div>
  <div class="card-body">
    <div class="row">
      <div class="col-md-6">
        <h5>Order Details</h5>
        <p><strong>Date:</strong> {{ date .CreatedAt }}</p>
        <p><strong>Total Amount:</strong> {{ currency .TotalAmount }}</p>
      </div>
      <div class="col-md-6">
        <h5>{{ .CounterpartLabel }} Details</h5>
        <p><strong>Name:</strong> {{ orNA .CounterpartName }}</p>
        <p><strong>Contact:</strong> {{ orNA .CounterpartPhone }}</p>
      </div>
    </div>
    <div class="table-responsive">
      <table class="table">
        <thead><tr><th>Product</th><th>Quantity</th><th>Price</th><th>Total</th></tr></thead>
        <tbody>
          {{- range .Items }}
          <tr>
            <td>{{ orNA .Product.Name }}</td>
            <td>{{ .Quantity }} {{ .Product.Unit }}</td>
            <td>{{ currency .Product.Price }}</td>
            <td>{{ currency .LineTotal }}</td>
          </tr>
          {{- end }}
        </tbody>
      </table>
    </div>
    {{- if .CanTransition }}
    <div class="mt-3">
      <form class="d-inline" method="post" action="/orders/{{ .ID }}/status">
        <input type="hidden" name="status" value="completed">
        <button type="submit" class="btn btn-success">Mark as Completed</button>
      </form>
      <form class="d-inline" method="post" action="/orders/{{ .ID }}/status">
        <input type="hidden" name="status" value="cancelled">
        <button type="submit" class="btn btn-danger">Cancel Order</button>
      </form>
    </div>
    {{- end }}
  </div>
</div>
{{- end }}
{{- end -}}`))

type orderItemView struct {
	Product   domain.Product
	Quantity  int
	LineTotal float64
}

type orderView struct {
	ID               string
	Status           domain.OrderStatus
	CreatedAt        time.Time
	TotalAmount      float64
	Items            []orderItemView
	CounterpartLabel string
	CounterpartName  string
	CounterpartPhone string
	CanTransition    bool
}

// OrderCards renders the orders view. The viewer's role decides which
// counterparty's contact shows and whether the status actions appear: only a
// farmer may transition an order.
func OrderCards(orders []domain.Order, viewerRole string) template.HTML {
	views := make([]orderView, 0, len(orders))
	for _, o := range orders {
		v := orderView{
			ID:          o.ID,
			Status:      o.Status,
			CreatedAt:   o.CreatedAt,
			TotalAmount: o.TotalAmount,
		}
		if viewerRole == domain.RoleFarmer {
			v.CounterpartLabel = "Consumer"
			v.CounterpartName = o.Consumer.Name
			v.CounterpartPhone = o.Consumer.Phone
			v.CanTransition = o.Status == domain.OrderPending
		} else {
			v.CounterpartLabel = "Farmer"
			v.CounterpartName = o.Farmer.Name
			v.CounterpartPhone = o.Farmer.Phone
		}
		for _, it := range o.Items {
			v.Items = append(v.Items, orderItemView{
				Product:   it.Product,
				Quantity:  it.Quantity,
				LineTotal: float64(it.Quantity) * it.Product.Price,
			})
		}
		views = append(views, v)
	}
	return execute(orderCardsTmpl, views)
}

var recentOrderRowsTmpl = template.Must(template.New("recentOrderRows").Funcs(fragFuncs).Parse(`
{{- if not . -}}
<tr><td colspan="5" class="text-center">No orders found</td></tr>
{{- else -}}
{{- range . }}
<tr>
  <td>{{ orNA .ID }}</td>
  <td>{{ orNA .Consumer.Name }}</td>
  <td>{{ currency .TotalAmount }}</td>
  <td><span class="badge bg-{{ badge .Status }}">{{ .Status }}</span></td>
  <td>{{ date .CreatedAt }}</td>
</tr>
{{- end }}
{{- end -}}`))

// RecentOrderRows renders the dashboard's recent-orders table body.
func RecentOrderRows(orders []domain.Order) template.HTML {
	return execute(recentOrderRowsTmpl, orders)
}

var farmerOrderRowsTmpl = template.Must(template.New("farmerOrderRows").Funcs(fragFuncs).Parse(`
{{- if not . -}}
<tr><td colspan="7" class="text-center">No orders found</td></tr>
{{- else -}}
{{- range . }}
<tr>
  <td>{{ orNA .ID }}</td>
  <td>{{ orNA .Consumer.Name }}</td>
  <td>{{ range $i, $it := .Items }}{{ if $i }}, {{ end }}{{ orNA $it.Product.Name }}{{ end }}</td>
  <td>{{ currency .TotalAmount }}</td>
  <td><span class="badge bg-{{ badge .Status }}">{{ .Status }}</span></td>
  <td>{{ date .CreatedAt }}</td>
  <td>
    <a class="btn btn-sm btn-primary" href="/orders/{{ .ID }}">View</a>
    {{- if eq .Status "pending" }}
    <form class="d-inline" method="post" action="/dashboard/orders/{{ .ID }}/status">
      <input type="hidden" name="status" value="completed">
      <button type="submit" class="btn btn-sm btn-success">Complete</button>
    </form>
    {{- end }}
  </td>
</tr>
{{- end }}
{{- end -}}`))

// FarmerOrderRows renders the dashboard's order management table body. The
// complete action only shows while the order is still pending.
func FarmerOrderRows(orders []domain.Order) template.HTML {
	return execute(farmerOrderRowsTmpl, orders)
}

var metricsPanelTmpl = template.Must(template.New("metricsPanel").Funcs(fragFuncs).Parse(`
<div class="row">
  <div class="col-md-4"><div class="card text-center"><div class="card-body">
    <h6 class="card-subtitle text-muted">Total Products</h6>
    <p class="display-6">{{ .TotalProducts }}</p>
  </div></div></div>
  <div class="col-md-4"><div class="card text-center"><div class="card-body">
    <h6 class="card-subtitle text-muted">Pending Orders</h6>
    <p class="display-6">{{ .PendingOrders }}</p>
  </div></div></div>
  <div class="col-md-4"><div class="card text-center"><div class="card-body">
    <h6 class="card-subtitle text-muted">Total Revenue</h6>
    <p class="display-6">{{ currency .TotalRevenue }}</p>
  </div></div></div>
</div>`))

// MetricsPanel renders the aggregate cards of the farmer dashboard.
func MetricsPanel(m ports.Metrics) template.HTML {
	return execute(metricsPanelTmpl, m)
}

var connectivityTmpl = template.Must(template.New("connectivity").Parse(`
<div class="alert alert-danger" role="alert">
  <h4 class="alert-heading">Connection Error</h4>
  <p>Cannot connect to the backend server. Please check:</p>
  <ul>
    <li>Make sure the backend server is running</li>
    <li>Check if the server is accessible at {{ . }}</li>
    <li>Verify your internet connection</li>
  </ul>
  <hr>
  <p class="mb-0">Try refreshing the page once the server is running.</p>
</div>`))

// ConnectivityNotice is the diagnostic that replaces page content when the
// backend cannot be reached. Every pane shows this same fragment so the user
// sees one fault, not three.
func ConnectivityNotice(backendURL string) template.HTML {
	return execute(connectivityTmpl, backendURL)
}

// execute runs a pre-parsed template. The templates are static and the data
// types are fixed, so an execution failure is a programming error; it is
// rendered as an HTML comment instead of a panic mid-response.
func execute(t *template.Template, data any) template.HTML {
	var buf bytes.Buffer
	if err := t.Execute(&buf, data); err != nil {
		return template.HTML("<!-- render error -->")
	}
	return template.HTML(buf.String())
}
