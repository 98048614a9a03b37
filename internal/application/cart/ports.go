package cart

import "context"

// Notifier canal de mensajes para el usuario (el "toast" de la tienda).
// Es fire-and-forget: solo recibe el texto, nunca datos estructurados.
type Notifier interface {
	Error(ctx context.Context, message string)
}

// NotifierFunc adapta una función al puerto Notifier.
type NotifierFunc func(ctx context.Context, message string)

// Error implementa Notifier.
func (f NotifierFunc) Error(ctx context.Context, message string) { f(ctx, message) }
