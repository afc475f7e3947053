package main

import (
	log "github.com/sirupsen/logrus"

	"github.com/9seconds/geosuggest/geosuggest"
)

type logger struct {
	requestLog *log.Entry
}

func (l *logger) RequestSent(url string) {
	l.requestLog.WithField("url", url).Debug("Request was sent")
}

func (l *logger) RequestFailed(err error) {
	l.requestLog.WithError(err).Debug("Request has failed")
}

func (l *logger) ResponseReceived(statusCode int, results int) {
	l.requestLog.WithFields(log.Fields{
		"status_code": statusCode,
		"results":     results,
	}).Debug("Response was received")
}

func newLogger(base *log.Logger) geosuggest.Logger {
	return &logger{
		requestLog: base.WithField("event_name", "suggest"),
	}
}
