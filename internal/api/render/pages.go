package render

import (
	"html/template"

	"github.com/agrigo/storefront/internal/core/domain"
)

// Page is the data every full document is built from.
type Page struct {
	Title   string
	User    *domain.User
	Flash   string
	Error   string
	Content template.HTML
}

var layoutTmpl = template.Must(template.New("layout").Parse(`<!DOCTYPE html>
<html lang="en">
<head>
  <meta charset="utf-8">
  <meta name="viewport" content="width=device-width, initial-scale=1">
  <title>{{ .Title }} — AgriGo</title>
  <link href="https://cdn.jsdelivr.net/npm/bootstrap@5.3.3/dist/css/bootstrap.min.css" rel="stylesheet">
</head>
<body>
<nav class="navbar navbar-expand-lg navbar-dark bg-success">
  <div class="container">
    <a class="navbar-brand" href="/">AgriGo</a>
    <ul class="navbar-nav ms-auto">
      {{- if .User }}
      {{- if eq .User.Role "farmer" }}
      <li class="nav-item"><a class="nav-link" href="/dashboard">Dashboard</a></li>
      {{- end }}
      <li class="nav-item"><a class="nav-link" href="/products">Products</a></li>
      <li class="nav-item"><a class="nav-link" href="/orders">Orders</a></li>
      <li class="nav-item">
        <form method="post" action="/logout"><button type="submit" class="btn btn-link nav-link">Logout ({{ .User.Name }})</button></form>
      </li>
      {{- else }}
      <li class="nav-item"><a class="nav-link" href="/login">Login</a></li>
      <li class="nav-item"><a class="nav-link" href="/signup">Sign Up</a></li>
      {{- end }}
    </ul>
  </div>
</nav>
<div class="container mt-4">
  {{- if .Flash }}
  <div class="alert alert-success alert-dismissible fade show" role="alert">{{ .Flash }}</div>
  {{- end }}
  {{- if .Error }}
  <div class="alert alert-danger" role="alert">{{ .Error }}</div>
  {{- end }}
  {{ .Content }}
</div>
</body>
</html>`))

// Document composes a fragment into a full HTML page.
func Document(p Page) template.HTML {
	return execute(layoutTmpl, p)
}

var loginTmpl = template.Must(template.New("login").Parse(`
<div class="row justify-content-center"><div class="col-md-5">
  <h2 class="mb-3">Login</h2>
  <form method="post" action="/login">
    <div class="mb-3">
      <label class="form-label" for="email">Email</label>
      <input class="form-control" type="email" id="email" name="email" value="{{ .Email }}" required>
    </div>
    <div class="mb-3">
      <label class="form-label" for="password">Password</label>
      <input class="form-control" type="password" id="password" name="password" required>
    </div>
    <button type="submit" class="btn btn-success">Login</button>
    <a class="ms-2" href="/signup">Need an account?</a>
  </form>
</div></div>`))

type loginForm struct {
	Email string
}

// LoginContent renders the login form, preserving the typed email on error.
func LoginContent(email string) template.HTML {
	return execute(loginTmpl, loginForm{Email: email})
}

// SignupForm carries the signup form state for re-rendering after a
// validation failure.
type SignupForm struct {
	Name         string
	Email        string
	Phone        string
	Role         string
	FarmName     string
	FarmLocation string
}

var signupTmpl = template.Must(template.New("signup").Parse(`
<div class="row justify-content-center"><div class="col-md-6">
  <h2 class="mb-3">Sign Up</h2>
  <form method="post" action="/signup">
    <div class="mb-3">
      <label class="form-label" for="name">Name</label>
      <input class="form-control" id="name" name="name" value="{{ .Name }}" required>
    </div>
    <div class="mb-3">
      <label class="form-label" for="email">Email</label>
      <input class="form-control" type="email" id="email" name="email" value="{{ .Email }}" required>
    </div>
    <div class="mb-3">
      <label class="form-label" for="phone">Phone</label>
      <input class="form-control" id="phone" name="phone" value="{{ .Phone }}" required>
    </div>
    <div class="mb-3">
      <label class="form-label" for="role">Role</label>
      <select class="form-select" id="role" name="role" required>
        <option value="consumer" {{ if eq .Role "consumer" }}selected{{ end }}>Consumer</option>
        <option value="farmer" {{ if eq .Role "farmer" }}selected{{ end }}>Farmer</option>
      </select>
    </div>
    <div class="mb-3">
      <label class="form-label" for="farmName">Farm Name (farmers only)</label>
      <input class="form-control" id="farmName" name="farm_name" value="{{ .FarmName }}">
    </div>
    <div class="mb-3">
      <label class="form-label" for="farmLocation">Farm Location (farmers only)</label>
      <input class="form-control" id="farmLocation" name="farm_location" value="{{ .FarmLocation }}">
    </div>
    <div class="mb-3">
      <label class="form-label" for="password">Password</label>
      <input class="form-control" type="password" id="password" name="password" minlength="6" required>
    </div>
    <div class="mb-3">
      <label class="form-label" for="confirmPassword">Confirm Password</label>
      <input class="form-control" type="password" id="confirmPassword" name="confirm_password" required>
    </div>
    <button type="submit" class="btn btn-success">Create Account</button>
  </form>
</div></div>`))

// SignupContent renders the signup form with any previously entered values.
func SignupContent(form SignupForm) template.HTML {
	return execute(signupTmpl, form)
}

var homeTmpl = template.Must(template.New("home").Parse(`
<div class="p-5 mb-4 bg-light rounded-3 text-center">
  <h1 class="display-5">Fresh from the farm</h1>
  <p class="lead">Buy directly from local farmers.</p>
  <a class="btn btn-success btn-lg" href="/products">Browse Products</a>
</div>
<h2 class="mb-3">Featured Products</h2>
<div class="row">{{ . }}</div>`))

// HomeContent renders the landing page around the featured-products fragment.
func HomeContent(featured template.HTML) template.HTML {
	return execute(homeTmpl, featured)
}

var catalogTmpl = template.Must(template.New("catalog").Parse(`
<h2 class="mb-4">Products</h2>
<div class="row">{{ . }}</div>`))

// CatalogContent wraps the product cards into the catalog document body.
func CatalogContent(cards template.HTML) template.HTML {
	return execute(catalogTmpl, cards)
}

var ordersPageTmpl = template.Must(template.New("ordersPage").Parse(`
<h2 class="mb-4">My Orders</h2>
{{ . }}`))

// OrdersContent wraps the order cards into the orders document body.
func OrdersContent(cards template.HTML) template.HTML {
	return execute(ordersPageTmpl, cards)
}

// ProductFormValues pre-fills the dashboard product form when editing.
type ProductFormValues struct {
	EditingID   string
	Name        string
	Category    string
	Price       float64
	Quantity    int
	Unit        string
	Description string
	IsAvailable bool
}

// DashboardView is everything the farmer dashboard document needs. The three
// panes are mutually exclusive; ActivePane selects which one renders visible.
type DashboardView struct {
	FarmerName   string
	ActivePane   string // "dashboard", "products", or "orders"
	Metrics      template.HTML
	RecentOrders template.HTML
	ProductRows  template.HTML
	OrderRows    template.HTML
	ProductForm  ProductFormValues
	FormError    string
}

var dashboardTmpl = template.Must(template.New("dashboard").Parse(`
<h2 class="mb-3">Welcome, {{ .FarmerName }}</h2>
<ul class="nav nav-tabs mb-4">
  <li class="nav-item"><a class="nav-link{{ if eq .ActivePane "dashboard" }} active{{ end }}" href="/dashboard">Dashboard</a></li>
  <li class="nav-item"><a class="nav-link{{ if eq .ActivePane "products" }} active{{ end }}" href="/dashboard?pane=products">My Products</a></li>
  <li class="nav-item"><a class="nav-link{{ if eq .ActivePane "orders" }} active{{ end }}" href="/dashboard?pane=orders">Orders</a></li>
</ul>

{{- if eq .ActivePane "dashboard" }}
<div id="dashboardContent">
  {{ .Metrics }}
  <h4 class="mt-4">Recent Orders</h4>
  <table class="table">
    <thead><tr><th>Order ID</th><th>Customer</th><th>Amount</th><th>Status</th><th>Date</th></tr></thead>
    <tbody>{{ .RecentOrders }}</tbody>
  </table>
</div>
{{- end }}

{{- if eq .ActivePane "products" }}
<div id="productsContent">
  <div class="d-flex justify-content-between mb-3">
    <h4>My Products</h4>
  </div>
  <table class="table">
    <thead><tr><th>Name</th><th>Category</th><th>Price</th><th>Quantity</th><th>Status</th><th>Actions</th></tr></thead>
    <tbody>{{ .ProductRows }}</tbody>
  </table>

  <div class="card mt-4"><div class="card-body">
    <h5>{{ if .ProductForm.EditingID }}Edit Product{{ else }}Add New Product{{ end }}</h5>
    {{- if .FormError }}
    <div class="alert alert-danger">{{ .FormError }}</div>
    {{- end }}
    <form method="post" action="/dashboard/products">
      <div class="row">
        <div class="col-md-6 mb-3">
          <label class="form-label" for="productName">Name</label>
          <input class="form-control" id="productName" name="name" value="{{ .ProductForm.Name }}" required>
        </div>
        <div class="col-md-6 mb-3">
          <label class="form-label" for="productCategory">Category</label>
          <input class="form-control" id="productCategory" name="category" value="{{ .ProductForm.Category }}" required>
        </div>
        <div class="col-md-4 mb-3">
          <label class="form-label" for="productPrice">Price</label>
          <input class="form-control" type="number" step="0.01" id="productPrice" name="price" value="{{ .ProductForm.Price }}" required>
        </div>
        <div class="col-md-4 mb-3">
          <label class="form-label" for="productQuantity">Quantity</label>
          <input class="form-control" type="number" id="productQuantity" name="quantity" value="{{ .ProductForm.Quantity }}" required>
        </div>
        <div class="col-md-4 mb-3">
          <label class="form-label" for="productUnit">Unit</label>
          <input class="form-control" id="productUnit" name="unit" value="{{ .ProductForm.Unit }}" required>
        </div>
        <div class="col-12 mb-3">
          <label class="form-label" for="productDescription">Description</label>
          <textarea class="form-control" id="productDescription" name="description" required>{{ .ProductForm.Description }}</textarea>
        </div>
        <div class="col-12 mb-3 form-check">
          <input class="form-check-input" type="checkbox" id="productAvailable" name="is_available" value="true" {{ if .ProductForm.IsAvailable }}checked{{ end }}>
          <label class="form-check-label" for="productAvailable">Available</label>
        </div>
      </div>
      <button type="submit" class="btn btn-success">{{ if .ProductForm.EditingID }}Save Changes{{ else }}Add Product{{ end }}</button>
      {{- if .ProductForm.EditingID }}
      <a class="btn btn-outline-secondary" href="/dashboard/products/cancel-edit">Cancel</a>
      {{- end }}
    </form>
  </div></div>
</div>
{{- end }}

{{- if eq .ActivePane "orders" }}
<div id="ordersContent">
  <h4>Orders</h4>
  <table class="table">
    <thead><tr><th>Order ID</th><th>Customer</th><th>Products</th><th>Amount</th><th>Status</th><th>Date</th><th>Actions</th></tr></thead>
    <tbody>{{ .OrderRows }}</tbody>
  </table>
</div>
{{- end }}`))

// DashboardContent renders the farmer dashboard document body.
func DashboardContent(v DashboardView) template.HTML {
	return execute(dashboardTmpl, v)
}

type connectivityPage struct {
	FarmerName string
	Notice     template.HTML
}

var connectivityPageTmpl = template.Must(template.New("connectivityPage").Parse(`
<h2 class="mb-3">Welcome, {{ .FarmerName }}</h2>
<div id="dashboardContent">{{ .Notice }}</div>
<div id="productsContent">{{ .Notice }}</div>
<div id="ordersContent">{{ .Notice }}</div>`))

// ConnectivityContent replaces all three dashboard panes with the same
// connectivity diagnostic.
func ConnectivityContent(farmerName string, notice template.HTML) template.HTML {
	return execute(connectivityPageTmpl, connectivityPage{FarmerName: farmerName, Notice: notice})
}

var errorTmpl = template.Must(template.New("error").Parse(`
<div class="text-center py-5">
  <h1 class="display-4">{{ .Status }}</h1>
  <p class="lead">{{ .Message }}</p>
  <a class="btn btn-success" href="/">Back to Home</a>
</div>`))

type errorPage struct {
	Status  int
	Message string
}

// ErrorContent renders the generic error document body.
func ErrorContent(status int, message string) template.HTML {
	return execute(errorTmpl, errorPage{Status: status, Message: message})
}
