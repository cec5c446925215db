package document

// OnReady queues fn until Ready is called. Callbacks registered after the
// document became ready are never run, like a DOMContentLoaded listener
// added too late.
func (d *HTMLDocument) OnReady(fn func()) {
	if fn == nil {
		return
	}
	if d.isReady {
		d.logger.Debug("document is already ready, dropping callback")
		return
	}
	d.ready = append(d.ready, fn)
}

// Ready marks the document as ready and runs the queued callbacks in
// registration order. Only the first call has an effect.
func (d *HTMLDocument) Ready() {
	d.readyOnce.Do(func() {
		d.isReady = true
		callbacks := d.ready
		d.ready = nil
		d.logger.Debug("document ready", "callbacks", len(callbacks))
		for _, fn := range callbacks {
			fn()
		}
	})
}

func (d *HTMLDocument) IsReady() bool {
	return d.isReady
}
