// Package notify computes the daily insight for every user with a registered
// device and hands the results to the notification queue.
package notify

// Token is one registered push device for a user. A user may have several
// devices and receives the same insight on each of them.
type Token struct {
	UserID string
	Token  string
}
