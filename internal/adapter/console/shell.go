package console

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/niksmo/shopcart/internal/core/domain"
	"github.com/niksmo/shopcart/internal/core/format"
	"github.com/niksmo/shopcart/internal/core/port"
)

const menu = `
1. Bæta vöru við vörulista (addProduct)
2. Sýna vörur (showProducts)
3. Bæta vöru í körfu (addProductToCart)
4. Sýna körfu (showCart)
5. Klára kaup (checkout)
0. Hætta (quit)`

const commandPrompt = "Veldu aðgerð:"

// Shell runs the interactive menu: it asks for answers, hands them to
// the core services and prints what they return.
type Shell struct {
	prompter port.Prompter
	out      io.Writer
	errOut   io.Writer
	catalog  port.Catalog
	cart     port.Cart
	checkout port.Checkouter
}

func NewShell(
	prompter port.Prompter,
	out, errOut io.Writer,
	catalog port.Catalog,
	cart port.Cart,
	checkout port.Checkouter,
) *Shell {
	return &Shell{prompter, out, errOut, catalog, cart, checkout}
}

// Run reads commands until the input ends, the user quits or ctx is
// canceled. stopFn is called on return.
func (s *Shell) Run(ctx context.Context, stopFn context.CancelFunc) {
	const op = "Shell.Run"
	log := slog.With("op", op)

	defer stopFn()
	s.println(strings.TrimLeft(menu, "\n"))

	for ctx.Err() == nil {
		cmd, ok := s.prompter.Prompt(commandPrompt)
		if !ok {
			log.Info("input closed")
			return
		}

		if !s.dispatch(ctx, strings.TrimSpace(cmd)) {
			log.Info("quit by user")
			return
		}
	}
}

func (s *Shell) dispatch(ctx context.Context, cmd string) bool {
	switch cmd {
	case "":
	case "1", "addProduct":
		s.addProduct(ctx)
	case "2", "showProducts":
		s.showProducts()
	case "3", "addProductToCart":
		s.addProductToCart(ctx)
	case "4", "showCart":
		s.showCart()
	case "5", "checkout":
		s.doCheckout(ctx)
	case "h", "help":
		s.println(strings.TrimLeft(menu, "\n"))
	case "0", "q", "quit":
		return false
	default:
		s.printErr(fmt.Sprintf("Óþekkt aðgerð: %s", cmd))
	}
	return true
}

// ask returns the answer to label, an absent answer is empty.
func (s *Shell) ask(label string) string {
	answer, _ := s.prompter.Prompt(label)
	return answer
}

func (s *Shell) addProduct(ctx context.Context) {
	const op = "Shell.addProduct"

	title := s.ask("Titill:")
	if strings.TrimSpace(title) == "" {
		s.reject(op, domain.ErrEmptyTitle)
		return
	}

	description := s.ask("Lýsing:")
	if strings.TrimSpace(description) == "" {
		s.reject(op, domain.ErrEmptyDescription)
		return
	}

	price := s.ask("Verð:")

	p, err := s.catalog.AddProduct(ctx, title, description, price)
	if err != nil {
		s.reject(op, err)
		return
	}
	s.println("Vöru bætt við:\n" + format.Product(p))
}

func (s *Shell) showProducts() {
	for i, p := range s.catalog.ListAll() {
		s.println(format.CatalogEntry(i+1, p))
	}
}

func (s *Shell) addProductToCart(ctx context.Context) {
	const op = "Shell.addProductToCart"

	productID := s.ask("Sláðu inn auðkenni vöru:")
	if _, err := s.cart.Product(productID); err != nil {
		s.reject(op, err)
		return
	}

	quantity := s.ask("Sláðu inn fjölda vöru:")
	if err := s.cart.AddToCart(ctx, productID, quantity); err != nil {
		s.reject(op, err)
	}
}

func (s *Shell) showCart() {
	s.println(s.cart.Summary())
}

func (s *Shell) doCheckout(ctx context.Context) {
	const op = "Shell.checkout"

	if s.cart.IsEmpty() {
		s.println(domain.Message(domain.ErrEmptyCart))
		return
	}

	name := s.ask("Sláðu inn nafn:")
	address := s.ask("Sláðu inn heimilisfang:")

	r, err := s.checkout.Checkout(ctx, name, address)
	if err != nil {
		s.reject(op, err)
		return
	}
	s.println(r.Text)
}

func (s *Shell) reject(op string, err error) {
	slog.Debug("action rejected", "op", op, "kind", domain.KindOf(err), "err", err)
	s.printErr(domain.Message(err))
}

func (s *Shell) println(text string) {
	fmt.Fprintln(s.out, text)
}

func (s *Shell) printErr(text string) {
	fmt.Fprintln(s.errOut, text)
}
