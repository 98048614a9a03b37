// Package notify implementa el canal de mensajes al usuario del carrito.
package notify

import (
	"context"
	"sync"

	"github.com/jhoicas/rocketshoes-cart/internal/application/cart"
	"github.com/jhoicas/rocketshoes-cart/pkg/logger"
)

var _ cart.Notifier = (*Notifier)(nil)

type toastsKey struct{}

// Toasts acumula los mensajes emitidos durante una petición.
type Toasts struct {
	mu       sync.Mutex
	messages []string
}

// WithToasts adjunta un colector nuevo al contexto.
func WithToasts(ctx context.Context) (context.Context, *Toasts) {
	t := &Toasts{}
	return context.WithValue(ctx, toastsKey{}, t), t
}

// FromContext devuelve el colector del contexto, o nil.
func FromContext(ctx context.Context) *Toasts {
	t, _ := ctx.Value(toastsKey{}).(*Toasts)
	return t
}

func (t *Toasts) add(message string) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.messages = append(t.messages, message)
}

// Messages copia de los mensajes en orden de emisión (nunca nil).
func (t *Toasts) Messages() []string {
	t.mu.Lock()
	defer t.mu.Unlock()
	return append([]string{}, t.messages...)
}

// Notifier entrega el mensaje al colector del contexto (si hay) y lo deja en el log.
type Notifier struct {
	log *logger.Logger
}

// New construye el notifier. log puede ser nil.
func New(log *logger.Logger) *Notifier {
	if log == nil {
		log = logger.Nop()
	}
	return &Notifier{log: log}
}

// Error implementa cart.Notifier.
func (n *Notifier) Error(ctx context.Context, message string) {
	if t := FromContext(ctx); t != nil {
		t.add(message)
	}
	n.log.Warn().Str("toast", message).Msg("mensaje al usuario")
}
