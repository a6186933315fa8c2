package cmd

// SampleDocument is opened when inkwell starts without a file.
const SampleDocument = `# Privacy Policy

Welcome to our **Privacy Policy** page. This document outlines how we collect, use, and protect your information.

## Data Collection

We collect the following types of data:

- **Personal Information**: Name, email address, phone number
- **Usage Data**: Pages visited, time spent, interactions
- **Device Information**: Browser type, operating system, IP address

## How We Use Your Data

1. To provide and maintain our service
2. To notify you about changes
3. To provide customer support
4. To gather analysis or valuable information

> Your privacy is important to us. We are committed to protecting your personal data.

## Contact Us

If you have questions, reach us at [support@example.com](mailto:support@example.com).

---

*Last updated: February 2026*
`
