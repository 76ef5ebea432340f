// Package pagestate wraps an existing view in a container that switches
// between mutually exclusive page states: the original content, a loading
// spinner, an error view, an empty-data view, a no-network view and an
// optional custom view.
//
// A container is assembled once with a [Builder]. Init performs the tree
// surgery: the target view is detached from its parent, the container is
// inserted at the same index with the same layout params, and the target
// becomes the container's Content slot. Default views for the other states
// are installed from a [theme.Style] and can be replaced before Build.
//
//	c, err := pagestate.Create(list, pagestate.WithExecutor(looper)).
//		SetRetryListener(reload).
//		Build()
//	if err != nil {
//		return err
//	}
//	c.ShowLoading()
//	go func() {
//		items := fetch()
//		looper.Post(func() { list.SetItems(items) })
//		c.ShowContent()
//	}()
//
// State changes may be requested from any goroutine. On the UI thread they
// apply immediately; elsewhere they are posted to the executor and applied
// later in FIFO order.
package pagestate
