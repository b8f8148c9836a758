// Copyright (c) 2025 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

// Package x509certs decodes a single [PEM] armored [X.509] certificate.
//
// Exactly one PEM block is accepted. A [PKCS7] bundle is recognised and rejected
// with a hint about how many certificates it holds. Parse failures keep the
// underlying crypto/x509 error in the chain so its text reaches the user.
//
// [X.509]: https://grokipedia.com/page/X.509
// [PKCS7]: https://grokipedia.com/page/PKCS_7
// [PEM]: https://grokipedia.com/page/PEM#privacy-enhanced-mail
package x509certs
